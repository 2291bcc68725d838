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

// PayoutHandler handles the admin-only Wave payout route.

type PayoutHandler struct {
	usecase usecase.IInitiatePayoutUseCase
	logger  *zap.Logger
}

func NewPayoutHandler(uc usecase.IInitiatePayoutUseCase, logger *zap.Logger) *PayoutHandler {
	return &PayoutHandler{usecase: uc, logger: logger}
}

// InitiatePayout sends funds to a mobile-money recipient.
func (h *PayoutHandler) InitiatePayout(c *gin.Context) {
	var payload request.InitiatePayoutRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	payout, err := h.usecase.InitiatePayout(c.Request.Context(), usecase.InitiatePayoutInput{
		AdminID:        middleware.GetUserID(c),
		RecipientPhone: payload.RecipientPhone,
		RecipientName:  payload.RecipientName,
		Amount:         payload.Amount,
		Currency:       payload.Currency,
		Description:    payload.Description,
	})
	if err != nil {
		appErr := mapPayoutError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPayout(payout))
}

func mapPayoutError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrUnauthenticated):
		return pkg.NewDomainErrorSimple("UNAUTHORIZED", "Authentication required", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrForbidden):
		return pkg.NewDomainErrorSimple("FORBIDDEN", "Administrator role required", http.StatusForbidden)
	case errors.Is(err, usecase.ErrInvalidPayout):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Recipient phone and an amount of at least 100 are required", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrGatewayNotConfigured):
		return pkg.NewDomainErrorSimple("GATEWAY_UNAVAILABLE", "Payout system temporarily unavailable", http.StatusServiceUnavailable)
	case errors.Is(err, usecase.ErrPayoutRejected):
		return pkg.NewDomainError("GATEWAY_REJECTED", "Payout provider rejected the request", err, http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
