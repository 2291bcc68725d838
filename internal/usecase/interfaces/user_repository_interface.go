package interfaces

import (
	"context"

	"miprojet_payments/internal/domain/entities"
)

// IUserRepository abstracts DynamoDB persistence for User.
//
// GetByID backs the server-side role lookups (payouts, payment read-back);
// ListAdmins backs the admin broadcast fan-out on completed contributions.

type IUserRepository interface {
	Create(ctx context.Context, u entities.User) (entities.User, error)
	GetByID(ctx context.Context, id string) (entities.User, error)
	GetByEmail(ctx context.Context, email string) (entities.User, error)
	ListAdmins(ctx context.Context) ([]entities.User, error)
}
