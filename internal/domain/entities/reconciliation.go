package entities

// ReconciliationOutcome is the shared three-state result every provider
// status vocabulary is translated into before any business logic runs.

type ReconciliationOutcome string

const (
	OutcomeCompleted ReconciliationOutcome = "completed"
	OutcomeFailed    ReconciliationOutcome = "failed"
	OutcomeCancelled ReconciliationOutcome = "cancelled"
)

// Status maps the outcome onto the payment status enum.
func (o ReconciliationOutcome) Status() PaymentStatus {
	switch o {
	case OutcomeCompleted:
		return PaymentStatusCompleted
	case OutcomeCancelled:
		return PaymentStatusCancelled
	default:
		return PaymentStatusFailed
	}
}

// ReconciliationEvent is the normalized form of an inbound webhook payload.
//
// The three gateways disagree on everything: CinetPay reports a two-digit
// result code, KKIAPAY a boolean flag, Wave an event-type string. Each
// gateway's ParseWebhook verifies the payload signature and produces one of
// these before the reconciler runs.
//
// Amount carries the provider-reported settlement amount when the payload
// includes one (zero otherwise). Metadata holds the provider-specific fields
// to merge into the payment's metadata bag.

type ReconciliationEvent struct {
	Reference string
	Outcome   ReconciliationOutcome
	Amount    int64
	Metadata  map[string]interface{}
}
