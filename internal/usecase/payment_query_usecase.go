package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"miprojet_payments/internal/domain/entities"
	"miprojet_payments/internal/usecase/interfaces"
)

var ErrPaymentQueryNotFound = errors.New("payment not found")

// IPaymentQueryUseCase exposes payment read-back for dashboards. A payment
// is visible to its owner and to administrators.

type IPaymentQueryUseCase interface {
	GetPayment(ctx context.Context, paymentID, requesterID string) (entities.Payment, error)
}

type PaymentQueryUseCase struct {
	payments interfaces.IPaymentRepository
	users    interfaces.IUserRepository
}

var _ IPaymentQueryUseCase = (*PaymentQueryUseCase)(nil)

func NewPaymentQueryUseCase(payments interfaces.IPaymentRepository, users interfaces.IUserRepository) *PaymentQueryUseCase {
	return &PaymentQueryUseCase{payments: payments, users: users}
}

func (u *PaymentQueryUseCase) GetPayment(ctx context.Context, paymentID, requesterID string) (entities.Payment, error) {
	if strings.TrimSpace(requesterID) == "" {
		return entities.Payment{}, ErrUnauthenticated
	}
	paymentID = strings.TrimSpace(paymentID)
	if paymentID == "" {
		return entities.Payment{}, ErrPaymentQueryNotFound
	}

	p, err := u.payments.GetByID(ctx, paymentID)
	if err != nil {
		return entities.Payment{}, fmt.Errorf("loading payment %s: %w", paymentID, err)
	}
	if p.ID == "" {
		return entities.Payment{}, ErrPaymentQueryNotFound
	}
	if p.UserID == requesterID {
		return p, nil
	}

	caller, err := u.users.GetByID(ctx, requesterID)
	if err != nil {
		return entities.Payment{}, fmt.Errorf("looking up caller %s: %w", requesterID, err)
	}
	if caller.ID == "" || !caller.IsAdmin() {
		return entities.Payment{}, ErrForbidden
	}
	return p, nil
}
