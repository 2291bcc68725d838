package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"miprojet_payments/internal/domain/entities"
	"miprojet_payments/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrForbidden      = errors.New("caller is not an administrator")
	ErrInvalidPayout  = errors.New("invalid payout request")
	ErrPayoutRejected = errors.New("payout gateway rejected the request")
)

// InitiatePayoutInput describes an admin-initiated outbound transfer.

type InitiatePayoutInput struct {
	AdminID        string
	RecipientPhone string
	RecipientName  string
	Amount         int64
	Currency       string
	Description    string
}

// IInitiatePayoutUseCase sends funds out to a mobile-money recipient and
// logs the result as a negative-amount payment record.
//
// The payout API is synchronous and idempotent on the client reference, so
// the gateway result is logged directly as the final record; there is no
// pending/confirm split.

type IInitiatePayoutUseCase interface {
	InitiatePayout(ctx context.Context, in InitiatePayoutInput) (entities.Payment, error)
}

type InitiatePayoutUseCase struct {
	payments interfaces.IPaymentRepository
	users    interfaces.IUserRepository
	gateway  interfaces.IPayoutGateway
	logger   *zap.Logger
}

var _ IInitiatePayoutUseCase = (*InitiatePayoutUseCase)(nil)

func NewInitiatePayoutUseCase(payments interfaces.IPaymentRepository, users interfaces.IUserRepository, gateway interfaces.IPayoutGateway, logger *zap.Logger) *InitiatePayoutUseCase {
	return &InitiatePayoutUseCase{payments: payments, users: users, gateway: gateway, logger: logger}
}

func (u *InitiatePayoutUseCase) InitiatePayout(ctx context.Context, in InitiatePayoutInput) (entities.Payment, error) {
	if strings.TrimSpace(in.AdminID) == "" {
		return entities.Payment{}, ErrUnauthenticated
	}

	// Role is resolved server-side; a client-supplied claim is never trusted.
	caller, err := u.users.GetByID(ctx, in.AdminID)
	if err != nil {
		return entities.Payment{}, fmt.Errorf("looking up caller %s: %w", in.AdminID, err)
	}
	if caller.ID == "" || !caller.IsAdmin() {
		u.logger.Warn("payout attempted by non-admin", zap.String("user_id", in.AdminID))
		return entities.Payment{}, ErrForbidden
	}

	if strings.TrimSpace(in.RecipientPhone) == "" || in.Amount < entities.MinimumAmount {
		return entities.Payment{}, ErrInvalidPayout
	}
	if u.gateway == nil {
		u.logger.Error("payout gateway not configured")
		return entities.Payment{}, ErrGatewayNotConfigured
	}

	currency := strings.TrimSpace(in.Currency)
	if currency == "" {
		currency = entities.DefaultCurrency
	}

	reference := NewPaymentReference(referencePrefix(entities.PaymentMethodWavePayout))
	result, err := u.gateway.CreatePayout(ctx, interfaces.PayoutRequest{
		Reference:      reference,
		Amount:         in.Amount,
		Currency:       currency,
		RecipientPhone: in.RecipientPhone,
		RecipientName:  in.RecipientName,
		Description:    in.Description,
	})
	if err != nil {
		u.logger.Error("payout gateway call failed",
			zap.String("reference", reference),
			zap.String("admin_id", in.AdminID),
			zap.Error(err))
		return entities.Payment{}, fmt.Errorf("%w: %v", ErrPayoutRejected, err)
	}

	now := time.Now().UTC()
	metadata := result.Raw
	if metadata == nil {
		metadata = map[string]interface{}{}
	}
	metadata["recipient_phone"] = in.RecipientPhone
	if in.RecipientName != "" {
		metadata["recipient_name"] = in.RecipientName
	}
	if in.Description != "" {
		metadata["description"] = in.Description
	}
	metadata["provider_payout_id"] = result.ProviderPayoutID

	p := entities.Payment{
		ID:        uuid.NewString(),
		UserID:    in.AdminID,
		Amount:    -in.Amount,
		Currency:  currency,
		Method:    entities.PaymentMethodWavePayout,
		Reference: reference,
		Status:    result.Status,
		Metadata:  metadata,
		CreatedAt: now,
		UpdatedAt: now,
	}

	created, err := u.payments.Create(ctx, p)
	if err != nil {
		// The transfer already happened; surface the logging failure loudly.
		u.logger.Error("payout succeeded but record creation failed",
			zap.String("reference", reference),
			zap.String("provider_payout_id", result.ProviderPayoutID),
			zap.Error(err))
		return entities.Payment{}, fmt.Errorf("recording payout %s: %w", reference, err)
	}
	u.logger.Info("payout recorded",
		zap.String("payment_id", created.ID),
		zap.String("reference", reference),
		zap.Int64("amount", in.Amount),
		zap.String("status", string(created.Status)))
	return created, nil
}
