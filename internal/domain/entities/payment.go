package entities

import "time"

// PaymentStatus represents the lifecycle of a payment.
//
// A payment starts pending and moves exactly once into one of the terminal
// states. Transitions out of a terminal state are forbidden; repeated webhook
// deliveries for the same reference must observe that rule.

type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusCompleted PaymentStatus = "completed"
	PaymentStatusFailed    PaymentStatus = "failed"
	PaymentStatusCancelled PaymentStatus = "cancelled"
)

// Terminal reports whether the status admits no further transition.
func (s PaymentStatus) Terminal() bool {
	switch s {
	case PaymentStatusCompleted, PaymentStatusFailed, PaymentStatusCancelled:
		return true
	}
	return false
}

// PaymentMethod identifies the gateway/channel that processed the payment.

type PaymentMethod string

const (
	PaymentMethodCinetPay   PaymentMethod = "cinetpay"
	PaymentMethodWave       PaymentMethod = "wave"
	PaymentMethodKkiapay    PaymentMethod = "kkiapay"
	PaymentMethodWavePayout PaymentMethod = "wave_payout"
)

// MinimumAmount is the smallest inbound amount (whole XOF units) the
// gateways accept.
const MinimumAmount int64 = 100

// DefaultCurrency is used when the caller does not specify one.
const DefaultCurrency = "XOF"

// Payment is the central entity persisted in DynamoDB.
//
// Storage model:
//   - PK: id
//   - GSI1 (payment_reference-index): payment_reference
//
// Reference is generated by the initiator before the gateway call so a
// webhook can always find its row, even when the initiating HTTP response
// was lost. Amount is expressed in whole currency units and is negative for
// payouts. Metadata is a provider-specific bag merged (never replaced)
// across updates.

type Payment struct {
	ID               string                 `json:"id"`
	UserID           string                 `json:"user_id"`
	Amount           int64                  `json:"amount"`
	Currency         string                 `json:"currency"`
	Method           PaymentMethod          `json:"payment_method"`
	Reference        string                 `json:"payment_reference"`
	Status           PaymentStatus          `json:"status"`
	ProjectID        string                 `json:"project_id,omitempty"`
	SubscriptionID   string                 `json:"subscription_id,omitempty"`
	ServiceRequestID string                 `json:"service_request_id,omitempty"`
	Metadata         map[string]interface{} `json:"metadata,omitempty"`
	CreatedAt        time.Time              `json:"created_at"`
	UpdatedAt        time.Time              `json:"updated_at"`
}

// MergeMetadata returns the payment metadata with the given fields layered
// on top. Existing keys not present in extra are retained.
func (p Payment) MergeMetadata(extra map[string]interface{}) map[string]interface{} {
	merged := make(map[string]interface{}, len(p.Metadata)+len(extra))
	for k, v := range p.Metadata {
		merged[k] = v
	}
	for k, v := range extra {
		merged[k] = v
	}
	return merged
}
