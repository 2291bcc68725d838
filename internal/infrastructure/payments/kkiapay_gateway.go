package payments

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"miprojet_payments/internal/domain/entities"
	"miprojet_payments/internal/usecase/interfaces"
)

var ErrKkiapayNotConfigured = errors.New("kkiapay gateway not configured")

// KkiapayGateway integrates KKIAPAY (aggregator with a client-initiated
// widget instead of a hosted checkout page).
//
// Checkout is client-side: CreateCheckout returns the widget configuration
// the front-end feeds to the KKIAPAY SDK; no outbound HTTP call happens at
// initiation. The payment reference travels in the widget's opaque data
// blob and comes back in the webhook, which is the only way to correlate
// since the KKIAPAY payload does not echo a merchant reference field.

type KkiapayGateway struct {
	publicKey     string
	privateKey    string
	webhookSecret string
	sandbox       bool
}

var _ interfaces.ICheckoutGateway = (*KkiapayGateway)(nil)

func NewKkiapayGateway(publicKey, privateKey, webhookSecret string, sandbox bool) (*KkiapayGateway, error) {
	if publicKey == "" || privateKey == "" {
		return nil, ErrKkiapayNotConfigured
	}
	return &KkiapayGateway{
		publicKey:     publicKey,
		privateKey:    privateKey,
		webhookSecret: webhookSecret,
		sandbox:       sandbox,
	}, nil
}

func (g *KkiapayGateway) CreateCheckout(_ context.Context, req interfaces.CheckoutRequest) (interfaces.CheckoutSession, error) {
	return interfaces.CheckoutSession{
		Reference: req.Reference,
		Widget: map[string]interface{}{
			"key":      g.publicKey,
			"amount":   req.Amount,
			"sandbox":  g.sandbox,
			"callback": req.ReturnURL,
			"data":     req.Reference,
			"reason":   req.Description,
		},
	}, nil
}

type kkiapayWebhookPayload struct {
	TransactionID   string      `json:"transactionId"`
	IsPaymentSucces bool        `json:"isPaymentSucces"`
	Event           string      `json:"event"`
	Amount          json.Number `json:"amount"`
	Account         string      `json:"account"`
	Data            string      `json:"data"`
	PaymentMethod   string      `json:"paymentMethod"`
	PerformedAt     string      `json:"performedAt"`
	FailureCode     string      `json:"failureCode"`
}

// ParseWebhook verifies x-kkiapay-signature over the raw body and maps the
// boolean success flag onto the shared outcome. The data blob carries the
// payment reference; the provider transaction id is kept as a fallback for
// manual reconciliation.
func (g *KkiapayGateway) ParseWebhook(r *http.Request) (entities.ReconciliationEvent, error) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		return entities.ReconciliationEvent{}, err
	}
	if !verifyHMAC(g.webhookSecret, r.Header.Get("x-kkiapay-signature"), body) {
		return entities.ReconciliationEvent{}, ErrInvalidSignature
	}

	var payload kkiapayWebhookPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return entities.ReconciliationEvent{}, fmt.Errorf("decoding kkiapay webhook: %w", err)
	}

	reference := payload.Data
	if reference == "" {
		return entities.ReconciliationEvent{}, errors.New("kkiapay webhook missing data reference")
	}

	outcome := entities.OutcomeFailed
	if payload.IsPaymentSucces {
		outcome = entities.OutcomeCompleted
	}

	amount, _ := payload.Amount.Int64()
	metadata := map[string]interface{}{
		"kkiapay_transaction_id": payload.TransactionID,
		"payment_method":         payload.PaymentMethod,
	}
	if payload.Account != "" {
		metadata["phone"] = payload.Account
	}
	if payload.PerformedAt != "" {
		metadata["payment_date"] = payload.PerformedAt
	}
	if payload.FailureCode != "" {
		metadata["failure_code"] = payload.FailureCode
	}

	return entities.ReconciliationEvent{
		Reference: reference,
		Outcome:   outcome,
		Amount:    amount,
		Metadata:  metadata,
	}, nil
}
