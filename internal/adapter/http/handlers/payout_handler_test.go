package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"miprojet_payments/internal/adapter/http/handlers/mocks"
	"miprojet_payments/internal/domain/entities"
	"miprojet_payments/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func TestPayoutHandler_InitiatePayout(t *testing.T) {
	gin.SetMode(gin.TestMode)
	logger := zap.NewNop()

	newRouter := func(h *PayoutHandler, userID string) *gin.Engine {
		r := gin.New()
		r.POST("/v1/payouts/wave", asUser(userID), h.InitiatePayout)
		return r
	}

	t.Run("invalid payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInitiatePayoutUseCase(ctrl)
		h := NewPayoutHandler(uc, logger)
		r := newRouter(h, "admin-1")

		req := httptest.NewRequest(http.MethodPost, "/v1/payouts/wave", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInitiatePayoutUseCase(ctrl)
		h := NewPayoutHandler(uc, logger)
		r := newRouter(h, "admin-1")

		uc.EXPECT().InitiatePayout(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ interface{}, in usecase.InitiatePayoutInput) (entities.Payment, error) {
				if in.AdminID != "admin-1" || in.RecipientPhone != "+221770000000" {
					t.Fatalf("unexpected input %+v", in)
				}
				return entities.Payment{
					ID:     "pay-1",
					Amount: -1500,
					Status: entities.PaymentStatusCompleted,
				}, nil
			})

		req := httptest.NewRequest(http.MethodPost, "/v1/payouts/wave", bytes.NewBufferString(`{"recipient_phone":"+221770000000","amount":1500}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		var resp map[string]interface{}
		_ = json.Unmarshal(w.Body.Bytes(), &resp)
		if resp["success"] != true || resp["payout_id"] != "pay-1" {
			t.Fatalf("unexpected response %v", resp)
		}
	})

	t.Run("failed payout reported as success=false", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInitiatePayoutUseCase(ctrl)
		h := NewPayoutHandler(uc, logger)
		r := newRouter(h, "admin-1")

		uc.EXPECT().InitiatePayout(gomock.Any(), gomock.Any()).Return(entities.Payment{
			ID:     "pay-2",
			Status: entities.PaymentStatusFailed,
		}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/payouts/wave", bytes.NewBufferString(`{"recipient_phone":"+221770000000","amount":1500}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var resp map[string]interface{}
		_ = json.Unmarshal(w.Body.Bytes(), &resp)
		if resp["success"] != false {
			t.Fatalf("expected success=false, got %v", resp)
		}
	})

	t.Run("non-admin maps to 403", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInitiatePayoutUseCase(ctrl)
		h := NewPayoutHandler(uc, logger)
		r := newRouter(h, "user-1")

		uc.EXPECT().InitiatePayout(gomock.Any(), gomock.Any()).Return(entities.Payment{}, usecase.ErrForbidden)

		req := httptest.NewRequest(http.MethodPost, "/v1/payouts/wave", bytes.NewBufferString(`{"recipient_phone":"+221770000000","amount":1500}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})

	t.Run("gateway rejection maps to 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInitiatePayoutUseCase(ctrl)
		h := NewPayoutHandler(uc, logger)
		r := newRouter(h, "admin-1")

		uc.EXPECT().InitiatePayout(gomock.Any(), gomock.Any()).Return(entities.Payment{}, usecase.ErrPayoutRejected)

		req := httptest.NewRequest(http.MethodPost, "/v1/payouts/wave", bytes.NewBufferString(`{"recipient_phone":"+221770000000","amount":1500}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}
