package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"miprojet_payments/internal/adapter/http/handlers/mocks"
	"miprojet_payments/internal/adapter/http/middleware"
	"miprojet_payments/internal/domain/entities"
	"miprojet_payments/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func asUser(userID string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.UserKey, userID)
		c.Next()
	}
}

func newPaymentRouter(h *PaymentHandler, userID string) *gin.Engine {
	r := gin.New()
	r.POST("/v1/payments/cinetpay", asUser(userID), h.InitiateCinetPay)
	r.POST("/v1/payments/wave", asUser(userID), h.InitiateWave)
	r.POST("/v1/payments/kkiapay", asUser(userID), h.InitiateKkiapay)
	r.GET("/v1/payments/:id", asUser(userID), h.GetPayment)
	return r
}

func TestPaymentHandler_Initiate(t *testing.T) {
	gin.SetMode(gin.TestMode)
	logger := zap.NewNop()

	t.Run("invalid payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInitiatePaymentUseCase(ctrl)
		h := NewPaymentHandler(uc, uc, uc, nil, logger)
		r := newPaymentRouter(h, "user-1")

		req := httptest.NewRequest(http.MethodPost, "/v1/payments/cinetpay", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("cinetpay success returns payment url", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInitiatePaymentUseCase(ctrl)
		h := NewPaymentHandler(uc, nil, nil, nil, logger)
		r := newPaymentRouter(h, "user-1")

		uc.EXPECT().Initiate(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ interface{}, in usecase.InitiatePaymentInput) (usecase.InitiatePaymentResult, error) {
				if in.UserID != "user-1" || in.Amount != 500 {
					t.Fatalf("unexpected input %+v", in)
				}
				return usecase.InitiatePaymentResult{
					Payment: entities.Payment{
						ID:        "pay-1",
						Reference: "CP-1-DEADBEEF",
						Method:    entities.PaymentMethodCinetPay,
					},
					PaymentURL: "https://checkout.test/cp",
				}, nil
			})

		req := httptest.NewRequest(http.MethodPost, "/v1/payments/cinetpay", bytes.NewBufferString(`{"amount":500}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		var resp map[string]interface{}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("decoding response: %v", err)
		}
		if resp["payment_url"] != "https://checkout.test/cp" || resp["transaction_id"] != "CP-1-DEADBEEF" {
			t.Fatalf("unexpected response %v", resp)
		}
	})

	t.Run("wave success returns launch url", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInitiatePaymentUseCase(ctrl)
		h := NewPaymentHandler(nil, uc, nil, nil, logger)
		r := newPaymentRouter(h, "user-1")

		uc.EXPECT().Initiate(gomock.Any(), gomock.Any()).Return(usecase.InitiatePaymentResult{
			Payment: entities.Payment{
				ID:        "pay-2",
				Reference: "WAVE-1-DEADBEEF",
				Method:    entities.PaymentMethodWave,
			},
			PaymentURL: "https://pay.wave.com/c/cos-1",
		}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/payments/wave", bytes.NewBufferString(`{"amount":1000}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var resp map[string]interface{}
		_ = json.Unmarshal(w.Body.Bytes(), &resp)
		if resp["wave_launch_url"] != "https://pay.wave.com/c/cos-1" {
			t.Fatalf("expected wave_launch_url, got %v", resp)
		}
		if _, ok := resp["payment_url"]; ok {
			t.Fatalf("payment_url must be omitted for wave, got %v", resp)
		}
	})

	t.Run("invalid amount maps to 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInitiatePaymentUseCase(ctrl)
		h := NewPaymentHandler(uc, nil, nil, nil, logger)
		r := newPaymentRouter(h, "user-1")

		uc.EXPECT().Initiate(gomock.Any(), gomock.Any()).Return(usecase.InitiatePaymentResult{}, usecase.ErrInvalidAmount)

		req := httptest.NewRequest(http.MethodPost, "/v1/payments/cinetpay", bytes.NewBufferString(`{"amount":50}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("unconfigured gateway maps to 503", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInitiatePaymentUseCase(ctrl)
		h := NewPaymentHandler(nil, nil, uc, nil, logger)
		r := newPaymentRouter(h, "user-1")

		uc.EXPECT().Initiate(gomock.Any(), gomock.Any()).Return(usecase.InitiatePaymentResult{}, usecase.ErrGatewayNotConfigured)

		req := httptest.NewRequest(http.MethodPost, "/v1/payments/kkiapay", bytes.NewBufferString(`{"amount":500}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusServiceUnavailable {
			t.Fatalf("expected 503, got %d", w.Code)
		}
	})

	t.Run("missing user maps to 401", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInitiatePaymentUseCase(ctrl)
		h := NewPaymentHandler(uc, nil, nil, nil, logger)
		r := newPaymentRouter(h, "")

		uc.EXPECT().Initiate(gomock.Any(), gomock.Any()).Return(usecase.InitiatePaymentResult{}, usecase.ErrUnauthenticated)

		req := httptest.NewRequest(http.MethodPost, "/v1/payments/cinetpay", bytes.NewBufferString(`{"amount":500}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})
}

func TestPaymentHandler_GetPayment(t *testing.T) {
	gin.SetMode(gin.TestMode)
	logger := zap.NewNop()

	t.Run("found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		query := mocks.NewMockIPaymentQueryUseCase(ctrl)
		h := NewPaymentHandler(nil, nil, nil, query, logger)
		r := newPaymentRouter(h, "user-1")

		query.EXPECT().GetPayment(gomock.Any(), "pay-1", "user-1").Return(entities.Payment{
			ID:     "pay-1",
			UserID: "user-1",
			Status: entities.PaymentStatusCompleted,
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/payments/pay-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var resp map[string]interface{}
		_ = json.Unmarshal(w.Body.Bytes(), &resp)
		if resp["id"] != "pay-1" || resp["status"] != "completed" {
			t.Fatalf("unexpected response %v", resp)
		}
	})

	t.Run("not found maps to 404", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		query := mocks.NewMockIPaymentQueryUseCase(ctrl)
		h := NewPaymentHandler(nil, nil, nil, query, logger)
		r := newPaymentRouter(h, "user-1")

		query.EXPECT().GetPayment(gomock.Any(), "ghost", "user-1").Return(entities.Payment{}, usecase.ErrPaymentQueryNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/payments/ghost", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("foreign payment maps to 403", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		query := mocks.NewMockIPaymentQueryUseCase(ctrl)
		h := NewPaymentHandler(nil, nil, nil, query, logger)
		r := newPaymentRouter(h, "user-2")

		query.EXPECT().GetPayment(gomock.Any(), "pay-1", "user-2").Return(entities.Payment{}, usecase.ErrForbidden)

		req := httptest.NewRequest(http.MethodGet, "/v1/payments/pay-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})

	t.Run("unexpected error maps to 500", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		query := mocks.NewMockIPaymentQueryUseCase(ctrl)
		h := NewPaymentHandler(nil, nil, nil, query, logger)
		r := newPaymentRouter(h, "user-1")

		query.EXPECT().GetPayment(gomock.Any(), "pay-1", "user-1").Return(entities.Payment{}, errors.New("db down"))

		req := httptest.NewRequest(http.MethodGet, "/v1/payments/pay-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}
