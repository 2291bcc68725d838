package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"miprojet_payments/internal/domain/entities"
	"miprojet_payments/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrPaymentNotFound = errors.New("payment not found for reference")
	ErrInvalidEvent    = errors.New("invalid reconciliation event")
)

// ReconcileResult reports what a single webhook delivery did.
//
// Transitioned is true only for the delivery that actually moved the row
// out of pending; every repeated or conflicting delivery observes false and
// causes no side effects.

type ReconcileResult struct {
	Payment      entities.Payment
	Transitioned bool
}

// IReconcileUseCase applies one normalized webhook event to the store.

type IReconcileUseCase interface {
	Reconcile(ctx context.Context, ev entities.ReconciliationEvent) (ReconcileResult, error)
}

type ReconcileUseCase struct {
	payments      interfaces.IPaymentRepository
	subscriptions interfaces.ISubscriptionRepository
	plans         interfaces.IPlanRepository
	projects      interfaces.IProjectRepository
	notifications interfaces.INotificationRepository
	users         interfaces.IUserRepository
	logger        *zap.Logger
}

var _ IReconcileUseCase = (*ReconcileUseCase)(nil)

func NewReconcileUseCase(
	payments interfaces.IPaymentRepository,
	subscriptions interfaces.ISubscriptionRepository,
	plans interfaces.IPlanRepository,
	projects interfaces.IProjectRepository,
	notifications interfaces.INotificationRepository,
	users interfaces.IUserRepository,
	logger *zap.Logger,
) *ReconcileUseCase {
	return &ReconcileUseCase{
		payments:      payments,
		subscriptions: subscriptions,
		plans:         plans,
		projects:      projects,
		notifications: notifications,
		users:         users,
		logger:        logger,
	}
}

// Reconcile looks up the payment by reference and applies the event's
// terminal status through a single conditional update. Side effects fire
// only when this delivery performed the pending->terminal transition;
// repeated deliveries are confirmed no-ops. Side-effect failures are logged
// and do not fail the call: once the transition is committed, the gateway
// must receive a 200 so it stops retrying.
func (u *ReconcileUseCase) Reconcile(ctx context.Context, ev entities.ReconciliationEvent) (ReconcileResult, error) {
	if ev.Reference == "" {
		return ReconcileResult{}, ErrInvalidEvent
	}

	payment, err := u.payments.GetByReference(ctx, ev.Reference)
	if err != nil {
		return ReconcileResult{}, fmt.Errorf("looking up payment %s: %w", ev.Reference, err)
	}
	if payment.ID == "" {
		// The gateway may retry; a permanently unknown reference indicates
		// a configuration mismatch on the provider side.
		u.logger.Warn("webhook references unknown payment", zap.String("reference", ev.Reference))
		return ReconcileResult{}, ErrPaymentNotFound
	}

	metadata := ev.Metadata
	if ev.Amount > 0 && payment.Amount > 0 && ev.Amount != payment.Amount {
		// The gateway stays the source of truth for settlement; the
		// mismatch is recorded for operator reconciliation.
		u.logger.Warn("webhook amount differs from stored payment amount",
			zap.String("reference", ev.Reference),
			zap.Int64("stored_amount", payment.Amount),
			zap.Int64("reported_amount", ev.Amount))
		metadata = mergeInto(metadata, map[string]interface{}{
			"amount_mismatch": map[string]interface{}{
				"stored":   payment.Amount,
				"reported": ev.Amount,
			},
		})
	}

	target := ev.Outcome.Status()
	updated, transitioned, err := u.payments.TransitionStatus(ctx, payment.ID, target, payment.MergeMetadata(metadata))
	if err != nil {
		return ReconcileResult{}, fmt.Errorf("transitioning payment %s to %s: %w", payment.ID, target, err)
	}
	if !transitioned {
		u.logger.Info("duplicate webhook delivery, payment already terminal",
			zap.String("payment_id", updated.ID),
			zap.String("reference", ev.Reference),
			zap.String("status", string(updated.Status)),
			zap.String("requested", string(target)))
		return ReconcileResult{Payment: updated, Transitioned: false}, nil
	}

	u.logger.Info("payment reconciled",
		zap.String("payment_id", updated.ID),
		zap.String("reference", ev.Reference),
		zap.String("status", string(target)))

	switch target {
	case entities.PaymentStatusCompleted:
		u.applyCompletionEffects(ctx, updated)
	default:
		u.applyFailureEffects(ctx, updated)
	}

	return ReconcileResult{Payment: updated, Transitioned: true}, nil
}

func (u *ReconcileUseCase) applyCompletionEffects(ctx context.Context, p entities.Payment) {
	if p.SubscriptionID != "" {
		u.activateSubscription(ctx, p)
	}
	if p.ProjectID != "" {
		if _, err := u.projects.IncrementFundsRaised(ctx, p.ProjectID, p.Amount); err != nil {
			u.logger.Error("failed incrementing project funds",
				zap.String("payment_id", p.ID),
				zap.String("project_id", p.ProjectID),
				zap.Error(err))
		}
	}

	u.createNotification(ctx, entities.Notification{
		UserID:  p.UserID,
		Title:   "Paiement confirmé",
		Message: fmt.Sprintf("Votre paiement de %d %s a été confirmé.", p.Amount, p.Currency),
		Type:    entities.NotificationTypePaymentSuccess,
		Metadata: map[string]interface{}{
			"payment_id": p.ID,
			"reference":  p.Reference,
		},
	})

	// Plain contributions (no subscription attached) are broadcast to every
	// administrator.
	if p.SubscriptionID == "" {
		u.broadcastToAdmins(ctx, p)
	}
}

func (u *ReconcileUseCase) applyFailureEffects(ctx context.Context, p entities.Payment) {
	if p.SubscriptionID != "" {
		sub, err := u.subscriptions.GetByID(ctx, p.SubscriptionID)
		switch {
		case err != nil:
			u.logger.Error("failed loading subscription for cancellation",
				zap.String("subscription_id", p.SubscriptionID),
				zap.Error(err))
		case sub.ID != "" && sub.Status == entities.SubscriptionStatusPending:
			if _, err := u.subscriptions.Cancel(ctx, sub.ID); err != nil {
				u.logger.Error("failed cancelling subscription",
					zap.String("subscription_id", sub.ID),
					zap.Error(err))
			}
		}
	}

	u.createNotification(ctx, entities.Notification{
		UserID:  p.UserID,
		Title:   "Paiement échoué",
		Message: fmt.Sprintf("Votre paiement de %d %s n'a pas abouti.", p.Amount, p.Currency),
		Type:    entities.NotificationTypePaymentFailed,
		Metadata: map[string]interface{}{
			"payment_id": p.ID,
			"reference":  p.Reference,
			"status":     string(p.Status),
		},
	})
}

func (u *ReconcileUseCase) activateSubscription(ctx context.Context, p entities.Payment) {
	durationDays := entities.DefaultPlanDurationDays
	if planID, ok := p.Metadata["plan_id"].(string); ok && planID != "" {
		plan, err := u.plans.GetByID(ctx, planID)
		if err != nil || plan.ID == "" {
			u.logger.Warn("plan lookup failed, using default duration",
				zap.String("plan_id", planID),
				zap.Int("default_days", durationDays),
				zap.Error(err))
		} else if plan.DurationDays > 0 {
			durationDays = plan.DurationDays
		}
	}

	now := time.Now().UTC()
	expiresAt := now.AddDate(0, 0, durationDays)
	if _, err := u.subscriptions.Activate(ctx, p.SubscriptionID, now, expiresAt, p.ID, p.Method, p.Reference); err != nil {
		u.logger.Error("failed activating subscription",
			zap.String("subscription_id", p.SubscriptionID),
			zap.String("payment_id", p.ID),
			zap.Error(err))
		return
	}
	u.logger.Info("subscription activated",
		zap.String("subscription_id", p.SubscriptionID),
		zap.String("payment_id", p.ID),
		zap.Time("expires_at", expiresAt))
}

func (u *ReconcileUseCase) broadcastToAdmins(ctx context.Context, p entities.Payment) {
	admins, err := u.users.ListAdmins(ctx)
	if err != nil {
		u.logger.Error("failed listing admins for broadcast", zap.Error(err))
		return
	}
	for _, admin := range admins {
		u.createNotification(ctx, entities.Notification{
			UserID:  admin.ID,
			Title:   "Nouvelle contribution",
			Message: fmt.Sprintf("Contribution de %d %s confirmée (réf. %s).", p.Amount, p.Currency, p.Reference),
			Type:    entities.NotificationTypeAdminAlert,
			Metadata: map[string]interface{}{
				"payment_id": p.ID,
				"reference":  p.Reference,
			},
		})
	}
}

func (u *ReconcileUseCase) createNotification(ctx context.Context, n entities.Notification) {
	n.ID = uuid.NewString()
	n.CreatedAt = time.Now().UTC()
	if _, err := u.notifications.Create(ctx, n); err != nil {
		u.logger.Error("failed creating notification",
			zap.String("user_id", n.UserID),
			zap.String("type", string(n.Type)),
			zap.Error(err))
	}
}

func mergeInto(base, extra map[string]interface{}) map[string]interface{} {
	merged := make(map[string]interface{}, len(base)+len(extra))
	for k, v := range base {
		merged[k] = v
	}
	for k, v := range extra {
		merged[k] = v
	}
	return merged
}
