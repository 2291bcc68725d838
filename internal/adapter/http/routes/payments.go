package routes

import (
	"miprojet_payments/internal/adapter/http/handlers"
	"miprojet_payments/internal/adapter/http/middleware"
	"miprojet_payments/internal/config"

	"github.com/gin-gonic/gin"
)

const (
	PathPayments = "/payments"
	PathWebhooks = "/webhooks"
	PathPayouts  = "/payouts"
	PathUsers    = "/users"
)

func addPaymentRoutes(rg *gin.RouterGroup, cfg *config.Config, paymentHandler *handlers.PaymentHandler, webhookHandler *handlers.WebhookHandler, payoutHandler *handlers.PayoutHandler, userHandler *handlers.UserHandler) {
	authRequired := middleware.AuthMiddleware(cfg.JWTSecret)

	payments := rg.Group(PathPayments)
	payments.Use(authRequired)
	{
		payments.POST("/cinetpay", paymentHandler.InitiateCinetPay)
		payments.POST("/wave", paymentHandler.InitiateWave)
		payments.POST("/kkiapay", paymentHandler.InitiateKkiapay)
		payments.GET("/:id", paymentHandler.GetPayment)
	}

	// Gateway-to-server; authenticity enforced by signature verification.
	webhooks := rg.Group(PathWebhooks)
	{
		webhooks.POST("/cinetpay", webhookHandler.CinetPay)
		webhooks.POST("/wave", webhookHandler.Wave)
		webhooks.POST("/kkiapay", webhookHandler.Kkiapay)
	}

	payouts := rg.Group(PathPayouts)
	payouts.Use(authRequired)
	{
		payouts.POST("/wave", payoutHandler.InitiatePayout)
	}

	users := rg.Group(PathUsers)
	users.Use(middleware.ServiceKeyMiddleware(cfg.ServiceKey))
	{
		users.POST("/privileged", userHandler.ProvisionUser)
	}
}
