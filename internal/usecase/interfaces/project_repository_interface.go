package interfaces

import (
	"context"

	"miprojet_payments/internal/domain/entities"
)

// IProjectRepository abstracts DynamoDB persistence for Project.
//
// IncrementFundsRaised must be atomic at the store level (DynamoDB ADD).
// funds_raised is never recomputed from payments, so a lost update here is
// a durable correctness bug.

type IProjectRepository interface {
	GetByID(ctx context.Context, id string) (entities.Project, error)
	IncrementFundsRaised(ctx context.Context, id string, amount int64) (entities.Project, error)
}
