package response

import (
	"time"

	"miprojet_payments/internal/domain/entities"
	"miprojet_payments/internal/usecase"
)

// InitiatePaymentResponse carries the redirect target or widget
// configuration back to the front-end. TransactionID echoes the payment
// reference the gateway will report in its webhook.

type InitiatePaymentResponse struct {
	Success       bool                   `json:"success"`
	PaymentID     string                 `json:"payment_id"`
	TransactionID string                 `json:"transaction_id"`
	PaymentURL    string                 `json:"payment_url,omitempty"`
	WaveLaunchURL string                 `json:"wave_launch_url,omitempty"`
	Widget        map[string]interface{} `json:"widget,omitempty"`
}

func FromInitiatePaymentResult(r usecase.InitiatePaymentResult) InitiatePaymentResponse {
	resp := InitiatePaymentResponse{
		Success:       true,
		PaymentID:     r.Payment.ID,
		TransactionID: r.Payment.Reference,
		Widget:        r.Widget,
	}
	if r.Payment.Method == entities.PaymentMethodWave {
		resp.WaveLaunchURL = r.PaymentURL
	} else {
		resp.PaymentURL = r.PaymentURL
	}
	return resp
}

// PaymentResponse is the read-back shape used by dashboards.

type PaymentResponse struct {
	ID               string                 `json:"id"`
	UserID           string                 `json:"user_id"`
	Amount           int64                  `json:"amount"`
	Currency         string                 `json:"currency"`
	Method           string                 `json:"payment_method"`
	Reference        string                 `json:"payment_reference"`
	Status           string                 `json:"status"`
	ProjectID        string                 `json:"project_id,omitempty"`
	SubscriptionID   string                 `json:"subscription_id,omitempty"`
	ServiceRequestID string                 `json:"service_request_id,omitempty"`
	Metadata         map[string]interface{} `json:"metadata,omitempty"`
	CreatedAt        time.Time              `json:"created_at"`
	UpdatedAt        time.Time              `json:"updated_at"`
}

func FromPayment(p entities.Payment) PaymentResponse {
	return PaymentResponse{
		ID:               p.ID,
		UserID:           p.UserID,
		Amount:           p.Amount,
		Currency:         p.Currency,
		Method:           string(p.Method),
		Reference:        p.Reference,
		Status:           string(p.Status),
		ProjectID:        p.ProjectID,
		SubscriptionID:   p.SubscriptionID,
		ServiceRequestID: p.ServiceRequestID,
		Metadata:         p.Metadata,
		CreatedAt:        p.CreatedAt,
		UpdatedAt:        p.UpdatedAt,
	}
}
