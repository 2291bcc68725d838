package handlers

import (
	"errors"
	"net/http"

	"miprojet_payments/internal/infrastructure/payments"
	"miprojet_payments/internal/usecase"
	"miprojet_payments/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// WebhookHandler receives gateway callbacks and feeds them to the
// reconciler.
//
// Response policy: 200 once the database write (or confirmed no-op) is
// done, so the gateway stops retrying; 401 for unverifiable payloads, 400
// for malformed ones and 404 for unknown references, all of which the
// gateway may retry.

type WebhookHandler struct {
	reconciler usecase.IReconcileUseCase
	cinetpay   interfaces.ICheckoutGateway
	wave       interfaces.ICheckoutGateway
	kkiapay    interfaces.ICheckoutGateway
	logger     *zap.Logger
}

func NewWebhookHandler(reconciler usecase.IReconcileUseCase, cinetpay, wave, kkiapay interfaces.ICheckoutGateway, logger *zap.Logger) *WebhookHandler {
	return &WebhookHandler{reconciler: reconciler, cinetpay: cinetpay, wave: wave, kkiapay: kkiapay, logger: logger}
}

// CinetPay handles CinetPay payment notifications.
func (h *WebhookHandler) CinetPay(c *gin.Context) { h.handle(c, h.cinetpay, "cinetpay") }

// Wave handles Wave checkout session events.
func (h *WebhookHandler) Wave(c *gin.Context) { h.handle(c, h.wave, "wave") }

// Kkiapay handles KKIAPAY transaction notifications.
func (h *WebhookHandler) Kkiapay(c *gin.Context) { h.handle(c, h.kkiapay, "kkiapay") }

func (h *WebhookHandler) handle(c *gin.Context, gateway interfaces.ICheckoutGateway, provider string) {
	if gateway == nil {
		// No credentials means no way to verify authenticity; fail closed.
		h.logger.Warn("webhook received for unconfigured gateway", zap.String("provider", provider))
		c.JSON(http.StatusUnauthorized, gin.H{"error": "gateway not configured"})
		return
	}

	event, err := gateway.ParseWebhook(c.Request)
	if err != nil {
		switch {
		case errors.Is(err, payments.ErrInvalidSignature):
			h.logger.Warn("webhook signature verification failed",
				zap.String("provider", provider))
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid signature"})
		case errors.Is(err, payments.ErrIgnoredEvent):
			h.logger.Info("ignoring webhook event",
				zap.String("provider", provider),
				zap.Error(err))
			c.JSON(http.StatusOK, gin.H{"received": true})
		default:
			h.logger.Warn("malformed webhook payload",
				zap.String("provider", provider),
				zap.Error(err))
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		}
		return
	}

	result, err := h.reconciler.Reconcile(c.Request.Context(), event)
	if err != nil {
		if errors.Is(err, usecase.ErrPaymentNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "payment not found"})
			return
		}
		h.logger.Error("webhook reconciliation failed",
			zap.String("provider", provider),
			zap.String("reference", event.Reference),
			zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	h.logger.Info("webhook processed",
		zap.String("provider", provider),
		zap.String("reference", event.Reference),
		zap.String("status", string(result.Payment.Status)),
		zap.Bool("transitioned", result.Transitioned))
	c.JSON(http.StatusOK, gin.H{"success": true, "received": true})
}
