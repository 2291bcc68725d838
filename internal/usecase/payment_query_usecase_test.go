package usecase

import (
	"context"
	"errors"
	"testing"

	"miprojet_payments/internal/domain/entities"
	mock_interfaces "miprojet_payments/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestPaymentQueryUseCase_GetPayment(t *testing.T) {
	payment := entities.Payment{ID: "pay-1", UserID: "user-1", Amount: 500}

	t.Run("missing requester", func(t *testing.T) {
		uc := NewPaymentQueryUseCase(nil, nil)
		if _, err := uc.GetPayment(context.Background(), "pay-1", ""); !errors.Is(err, ErrUnauthenticated) {
			t.Fatalf("expected ErrUnauthenticated, got %v", err)
		}
	})

	t.Run("owner can read", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		payments := mock_interfaces.NewMockIPaymentRepository(ctrl)
		uc := NewPaymentQueryUseCase(payments, nil)

		payments.EXPECT().GetByID(gomock.Any(), "pay-1").Return(payment, nil)

		got, err := uc.GetPayment(context.Background(), "pay-1", "user-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.ID != "pay-1" {
			t.Fatalf("expected pay-1, got %s", got.ID)
		}
	})

	t.Run("admin can read another user's payment", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		payments := mock_interfaces.NewMockIPaymentRepository(ctrl)
		users := mock_interfaces.NewMockIUserRepository(ctrl)
		uc := NewPaymentQueryUseCase(payments, users)

		payments.EXPECT().GetByID(gomock.Any(), "pay-1").Return(payment, nil)
		users.EXPECT().GetByID(gomock.Any(), "admin-1").Return(entities.User{ID: "admin-1", Role: entities.UserRoleAdmin}, nil)

		if _, err := uc.GetPayment(context.Background(), "pay-1", "admin-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("stranger is forbidden", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		payments := mock_interfaces.NewMockIPaymentRepository(ctrl)
		users := mock_interfaces.NewMockIUserRepository(ctrl)
		uc := NewPaymentQueryUseCase(payments, users)

		payments.EXPECT().GetByID(gomock.Any(), "pay-1").Return(payment, nil)
		users.EXPECT().GetByID(gomock.Any(), "user-2").Return(entities.User{ID: "user-2", Role: entities.UserRoleUser}, nil)

		if _, err := uc.GetPayment(context.Background(), "pay-1", "user-2"); !errors.Is(err, ErrForbidden) {
			t.Fatalf("expected ErrForbidden, got %v", err)
		}
	})

	t.Run("unknown payment", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		payments := mock_interfaces.NewMockIPaymentRepository(ctrl)
		uc := NewPaymentQueryUseCase(payments, nil)

		payments.EXPECT().GetByID(gomock.Any(), "ghost").Return(entities.Payment{}, nil)

		if _, err := uc.GetPayment(context.Background(), "ghost", "user-1"); !errors.Is(err, ErrPaymentQueryNotFound) {
			t.Fatalf("expected ErrPaymentQueryNotFound, got %v", err)
		}
	})
}
