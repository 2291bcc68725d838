package interfaces

import (
	"context"

	"miprojet_payments/internal/domain/entities"
)

// IPlanRepository abstracts read access to subscription plans.

type IPlanRepository interface {
	GetByID(ctx context.Context, id string) (entities.Plan, error)
}
