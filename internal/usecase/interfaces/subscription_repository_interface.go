package interfaces

import (
	"context"
	"time"

	"miprojet_payments/internal/domain/entities"
)

// ISubscriptionRepository abstracts DynamoDB persistence for Subscription.
//
// Activate and Cancel are only called after the originating payment's
// conditional status transition succeeded, so they run at most once per
// payment.

type ISubscriptionRepository interface {
	GetByID(ctx context.Context, id string) (entities.Subscription, error)
	Activate(ctx context.Context, id string, startedAt, expiresAt time.Time, paymentID string, method entities.PaymentMethod, reference string) (entities.Subscription, error)
	Cancel(ctx context.Context, id string) (entities.Subscription, error)
}
