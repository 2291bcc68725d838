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
	ErrUnauthenticated      = errors.New("unauthenticated caller")
	ErrInvalidAmount        = errors.New("amount below gateway minimum")
	ErrGatewayNotConfigured = errors.New("payment gateway not configured")
	ErrGatewayRejected      = errors.New("payment gateway rejected the request")
)

// InitiatePaymentInput is the internal payment intent. Exactly one of
// SubscriptionID/ProjectID/ServiceRequestID may be set; it decides which
// side effect fires when the webhook completes the payment.

type InitiatePaymentInput struct {
	UserID           string
	Amount           int64
	Currency         string
	Description      string
	SubscriptionID   string
	PlanID           string
	ProjectID        string
	ServiceRequestID string
	ReturnURL        string
}

// InitiatePaymentResult carries the redirect target (CinetPay, Wave) or the
// widget configuration (KKIAPAY) alongside the persisted pending payment.

type InitiatePaymentResult struct {
	Payment    entities.Payment
	PaymentURL string
	Widget     map[string]interface{}
}

// IInitiatePaymentUseCase starts a payment with one external gateway.
//
// Ordering contract: the pending row is written BEFORE the gateway call, so
// a crash or timeout after the gateway accepted the request still leaves a
// row for the webhook to update. A known gateway failure marks the row
// failed; it is never left pending from a known-failed attempt.

type IInitiatePaymentUseCase interface {
	Initiate(ctx context.Context, in InitiatePaymentInput) (InitiatePaymentResult, error)
}

type InitiatePaymentUseCase struct {
	repo    interfaces.IPaymentRepository
	gateway interfaces.ICheckoutGateway
	method  entities.PaymentMethod
	notify  string
	logger  *zap.Logger
}

var _ IInitiatePaymentUseCase = (*InitiatePaymentUseCase)(nil)

// NewInitiatePaymentUseCase wires one initiator per gateway. A nil gateway
// means the provider credentials are absent (preview mode); initiation then
// degrades to ErrGatewayNotConfigured instead of crashing.
func NewInitiatePaymentUseCase(repo interfaces.IPaymentRepository, gateway interfaces.ICheckoutGateway, method entities.PaymentMethod, notifyURL string, logger *zap.Logger) *InitiatePaymentUseCase {
	return &InitiatePaymentUseCase{repo: repo, gateway: gateway, method: method, notify: notifyURL, logger: logger}
}

func (u *InitiatePaymentUseCase) Initiate(ctx context.Context, in InitiatePaymentInput) (InitiatePaymentResult, error) {
	if strings.TrimSpace(in.UserID) == "" {
		return InitiatePaymentResult{}, ErrUnauthenticated
	}
	if in.Amount < entities.MinimumAmount {
		u.logger.Warn("payment amount below minimum",
			zap.Int64("amount", in.Amount),
			zap.String("user_id", in.UserID),
			zap.String("method", string(u.method)))
		return InitiatePaymentResult{}, ErrInvalidAmount
	}
	if u.gateway == nil {
		u.logger.Error("payment gateway not configured", zap.String("method", string(u.method)))
		return InitiatePaymentResult{}, ErrGatewayNotConfigured
	}

	currency := strings.TrimSpace(in.Currency)
	if currency == "" {
		currency = entities.DefaultCurrency
	}

	reference := NewPaymentReference(referencePrefix(u.method))
	now := time.Now().UTC()

	metadata := map[string]interface{}{}
	if in.Description != "" {
		metadata["description"] = in.Description
	}
	if in.PlanID != "" {
		metadata["plan_id"] = in.PlanID
	}
	if in.SubscriptionID != "" {
		metadata["subscription_id"] = in.SubscriptionID
	}

	p := entities.Payment{
		ID:               uuid.NewString(),
		UserID:           in.UserID,
		Amount:           in.Amount,
		Currency:         currency,
		Method:           u.method,
		Reference:        reference,
		Status:           entities.PaymentStatusPending,
		ProjectID:        in.ProjectID,
		SubscriptionID:   in.SubscriptionID,
		ServiceRequestID: in.ServiceRequestID,
		Metadata:         metadata,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	created, err := u.repo.Create(ctx, p)
	if err != nil {
		u.logger.Error("failed persisting pending payment",
			zap.String("reference", reference),
			zap.String("method", string(u.method)),
			zap.Error(err))
		return InitiatePaymentResult{}, fmt.Errorf("persisting pending payment: %w", err)
	}
	u.logger.Info("pending payment created",
		zap.String("payment_id", created.ID),
		zap.String("reference", reference),
		zap.Int64("amount", in.Amount),
		zap.String("method", string(u.method)))

	sess, err := u.gateway.CreateCheckout(ctx, interfaces.CheckoutRequest{
		Reference:   reference,
		Amount:      in.Amount,
		Currency:    currency,
		Description: in.Description,
		CustomerID:  in.UserID,
		ReturnURL:   in.ReturnURL,
		NotifyURL:   u.notify,
	})
	if err != nil {
		u.logger.Error("gateway checkout failed",
			zap.String("payment_id", created.ID),
			zap.String("reference", reference),
			zap.String("method", string(u.method)),
			zap.Error(err))
		if _, _, tErr := u.repo.TransitionStatus(ctx, created.ID, entities.PaymentStatusFailed, created.MergeMetadata(map[string]interface{}{
			"failure_reason": err.Error(),
		})); tErr != nil {
			u.logger.Error("failed marking payment failed after gateway error",
				zap.String("payment_id", created.ID),
				zap.Error(tErr))
		}
		return InitiatePaymentResult{}, fmt.Errorf("%w: %v", ErrGatewayRejected, err)
	}
	u.logger.Info("gateway checkout created",
		zap.String("payment_id", created.ID),
		zap.String("reference", reference),
		zap.String("provider_session_id", sess.ProviderSessionID))

	return InitiatePaymentResult{
		Payment:    created,
		PaymentURL: sess.PaymentURL,
		Widget:     sess.Widget,
	}, nil
}

func referencePrefix(method entities.PaymentMethod) string {
	switch method {
	case entities.PaymentMethodCinetPay:
		return "CP"
	case entities.PaymentMethodWave:
		return "WAVE"
	case entities.PaymentMethodKkiapay:
		return "KKP"
	case entities.PaymentMethodWavePayout:
		return "WPO"
	default:
		return "PAY"
	}
}
