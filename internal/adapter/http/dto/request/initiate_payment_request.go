package request

// InitiatePaymentRequest is the payload shared by the three per-gateway
// initiation routes. Exactly one of the linked-entity ids should be set;
// the webhook uses it to pick the completion side effect.

type InitiatePaymentRequest struct {
	Amount           int64  `json:"amount"`
	Currency         string `json:"currency,omitempty"`
	Description      string `json:"description,omitempty"`
	SubscriptionID   string `json:"subscription_id,omitempty"`
	PlanID           string `json:"plan_id,omitempty"`
	ProjectID        string `json:"project_id,omitempty"`
	ServiceRequestID string `json:"service_request_id,omitempty"`
	ReturnURL        string `json:"return_url,omitempty"`
}
