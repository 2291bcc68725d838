package handlers

import (
	"errors"
	"net/http"

	request "miprojet_payments/internal/adapter/http/dto/request"
	response "miprojet_payments/internal/adapter/http/dto/response"
	"miprojet_payments/internal/usecase"
	"miprojet_payments/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// UserHandler handles the service-level privileged user creation route.

type UserHandler struct {
	usecase usecase.IProvisionUserUseCase
	logger  *zap.Logger
}

func NewUserHandler(uc usecase.IProvisionUserUseCase, logger *zap.Logger) *UserHandler {
	return &UserHandler{usecase: uc, logger: logger}
}

// ProvisionUser creates an account, optionally with the admin role.
func (h *UserHandler) ProvisionUser(c *gin.Context) {
	var payload request.ProvisionUserRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	user, err := h.usecase.ProvisionUser(c.Request.Context(), usecase.ProvisionUserInput{
		Email:     payload.Email,
		Password:  payload.Password,
		FirstName: payload.FirstName,
		LastName:  payload.LastName,
		Phone:     payload.Phone,
		Role:      payload.Role,
	})
	if err != nil {
		// Duplicate email is reported as success=false with 200; the back
		// office treats it as a soft failure.
		if errors.Is(err, usecase.ErrEmailAlreadyUsed) {
			c.JSON(http.StatusOK, response.ProvisionUserResponse{Success: false, Error: "email already in use"})
			return
		}
		if errors.Is(err, usecase.ErrInvalidUserInput) {
			appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid user input", http.StatusBadRequest)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		h.logger.Error("user provisioning failed", zap.Error(err))
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromProvisionedUser(user))
}
