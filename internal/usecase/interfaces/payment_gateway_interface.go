package interfaces

import (
	"context"
	"net/http"

	"miprojet_payments/internal/domain/entities"
)

// CheckoutRequest is the internal payment intent handed to a gateway.
//
// Reference is always embedded in the outbound request (external_reference,
// client_reference or the widget data blob depending on the provider) so
// reconciliation can recover context even when the webhook payload omits it.

type CheckoutRequest struct {
	Reference   string
	Amount      int64
	Currency    string
	Description string
	CustomerID  string
	ReturnURL   string
	NotifyURL   string
}

// CheckoutSession is what the gateway hands back to the caller. Redirect
// style providers fill PaymentURL; widget style providers fill Widget.

type CheckoutSession struct {
	Reference         string
	ProviderSessionID string
	PaymentURL        string
	Widget            map[string]interface{}
}

// PayoutRequest describes an outbound mobile-money transfer.

type PayoutRequest struct {
	Reference      string
	Amount         int64
	Currency       string
	RecipientPhone string
	RecipientName  string
	Description    string
}

// PayoutResult is the gateway-reported outcome of a synchronous payout.

type PayoutResult struct {
	ProviderPayoutID string
	Status           entities.PaymentStatus
	Raw              map[string]interface{}
}

// ICheckoutGateway abstracts a checkout-capable payment provider
// (CinetPay, Wave, KKIAPAY).
//
// ParseWebhook verifies the payload authenticity (mandatory, fail closed)
// and normalizes the provider vocabulary into a ReconciliationEvent before
// any business logic sees it.

type ICheckoutGateway interface {
	CreateCheckout(ctx context.Context, req CheckoutRequest) (CheckoutSession, error)
	ParseWebhook(r *http.Request) (entities.ReconciliationEvent, error)
}

// IPayoutGateway abstracts a payout-capable provider (Wave only).
//
// The payout API is assumed synchronous and idempotent on Reference; the
// result is logged as the final record without a pending/confirm split.

type IPayoutGateway interface {
	CreatePayout(ctx context.Context, req PayoutRequest) (PayoutResult, error)
}
