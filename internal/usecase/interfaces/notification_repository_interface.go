package interfaces

import (
	"context"

	"miprojet_payments/internal/domain/entities"
)

// INotificationRepository abstracts DynamoDB persistence for Notification.

type INotificationRepository interface {
	Create(ctx context.Context, n entities.Notification) (entities.Notification, error)
}
