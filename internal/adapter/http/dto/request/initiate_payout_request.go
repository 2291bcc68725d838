package request

// InitiatePayoutRequest is the payload of the admin-only payout route.

type InitiatePayoutRequest struct {
	RecipientPhone string `json:"recipient_phone"`
	RecipientName  string `json:"recipient_name,omitempty"`
	Amount         int64  `json:"amount"`
	Currency       string `json:"currency,omitempty"`
	Description    string `json:"description,omitempty"`
}
