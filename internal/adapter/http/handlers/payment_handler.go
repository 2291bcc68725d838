package handlers

import (
	"errors"
	"net/http"

	request "miprojet_payments/internal/adapter/http/dto/request"
	response "miprojet_payments/internal/adapter/http/dto/response"
	"miprojet_payments/internal/adapter/http/middleware"
	"miprojet_payments/internal/usecase"
	"miprojet_payments/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var errInvalidPaymentPayload = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)

// PaymentHandler handles HTTP requests for payment initiation and
// read-back. One initiator per gateway; a nil initiator is never wired (the
// routes always construct all three, unconfigured gateways answer 503).

type PaymentHandler struct {
	cinetpay usecase.IInitiatePaymentUseCase
	wave     usecase.IInitiatePaymentUseCase
	kkiapay  usecase.IInitiatePaymentUseCase
	query    usecase.IPaymentQueryUseCase
	logger   *zap.Logger
}

func NewPaymentHandler(cinetpay, wave, kkiapay usecase.IInitiatePaymentUseCase, query usecase.IPaymentQueryUseCase, logger *zap.Logger) *PaymentHandler {
	return &PaymentHandler{cinetpay: cinetpay, wave: wave, kkiapay: kkiapay, query: query, logger: logger}
}

// InitiateCinetPay starts a CinetPay checkout payment.
func (h *PaymentHandler) InitiateCinetPay(c *gin.Context) { h.initiate(c, h.cinetpay) }

// InitiateWave starts a Wave checkout payment.
func (h *PaymentHandler) InitiateWave(c *gin.Context) { h.initiate(c, h.wave) }

// InitiateKkiapay builds the KKIAPAY widget configuration.
func (h *PaymentHandler) InitiateKkiapay(c *gin.Context) { h.initiate(c, h.kkiapay) }

func (h *PaymentHandler) initiate(c *gin.Context, uc usecase.IInitiatePaymentUseCase) {
	var payload request.InitiatePaymentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPaymentPayload.HTTPStatus, errInvalidPaymentPayload.ToHTTPError())
		return
	}

	result, err := uc.Initiate(c.Request.Context(), usecase.InitiatePaymentInput{
		UserID:           middleware.GetUserID(c),
		Amount:           payload.Amount,
		Currency:         payload.Currency,
		Description:      payload.Description,
		SubscriptionID:   payload.SubscriptionID,
		PlanID:           payload.PlanID,
		ProjectID:        payload.ProjectID,
		ServiceRequestID: payload.ServiceRequestID,
		ReturnURL:        payload.ReturnURL,
	})
	if err != nil {
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromInitiatePaymentResult(result))
}

// GetPayment returns one payment; visible to its owner and administrators.
func (h *PaymentHandler) GetPayment(c *gin.Context) {
	p, err := h.query.GetPayment(c.Request.Context(), c.Param("id"), middleware.GetUserID(c))
	if err != nil {
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromPayment(p))
}

func mapPaymentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrUnauthenticated):
		return pkg.NewDomainErrorSimple("UNAUTHORIZED", "Authentication required", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrForbidden):
		return pkg.NewDomainErrorSimple("FORBIDDEN", "Insufficient permissions", http.StatusForbidden)
	case errors.Is(err, usecase.ErrInvalidAmount):
		return pkg.NewDomainErrorSimple("INVALID_AMOUNT", "Amount must be at least 100", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrGatewayNotConfigured):
		return pkg.NewDomainErrorSimple("GATEWAY_UNAVAILABLE", "Payment system temporarily unavailable", http.StatusServiceUnavailable)
	case errors.Is(err, usecase.ErrGatewayRejected):
		return pkg.NewDomainError("GATEWAY_REJECTED", "Payment provider rejected the request", err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentQueryNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
