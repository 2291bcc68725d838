package response

import "miprojet_payments/internal/domain/entities"

// InitiatePayoutResponse reports the gateway-recorded payout outcome.

type InitiatePayoutResponse struct {
	Success  bool   `json:"success"`
	PayoutID string `json:"payout_id"`
	Status   string `json:"status"`
}

func FromPayout(p entities.Payment) InitiatePayoutResponse {
	return InitiatePayoutResponse{
		Success:  p.Status == entities.PaymentStatusCompleted,
		PayoutID: p.ID,
		Status:   string(p.Status),
	}
}
