package interfaces

import (
	"context"

	"miprojet_payments/internal/domain/entities"
)

// IPaymentRepository abstracts DynamoDB persistence for Payment.
//
// TransitionStatus must be a single conditional update: the row moves to
// the target status only while it is still pending, and the returned bool
// reports whether this call performed the transition. Every downstream side
// effect of reconciliation is keyed off that bool, which is what makes
// at-least-once webhook delivery safe.

type IPaymentRepository interface {
	Create(ctx context.Context, p entities.Payment) (entities.Payment, error)
	GetByID(ctx context.Context, id string) (entities.Payment, error)
	GetByReference(ctx context.Context, reference string) (entities.Payment, error)
	TransitionStatus(ctx context.Context, id string, to entities.PaymentStatus, metadata map[string]interface{}) (entities.Payment, bool, error)
}
