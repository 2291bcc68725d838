package usecase

import (
	"context"
	"errors"
	"testing"

	"miprojet_payments/internal/domain/entities"
	mock_interfaces "miprojet_payments/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

func TestProvisionUserUseCase_Validations(t *testing.T) {
	logger := zap.NewNop()
	uc := NewProvisionUserUseCase(nil, logger)

	valid := ProvisionUserInput{
		Email:     "admin@example.com",
		Password:  "s3cret-pass",
		FirstName: "Ada",
		LastName:  "Diallo",
		Role:      "admin",
	}

	t.Run("missing email", func(t *testing.T) {
		in := valid
		in.Email = " "
		if _, err := uc.ProvisionUser(context.Background(), in); !errors.Is(err, ErrInvalidUserInput) {
			t.Fatalf("expected ErrInvalidUserInput, got %v", err)
		}
	})

	t.Run("email without at sign", func(t *testing.T) {
		in := valid
		in.Email = "not-an-email"
		if _, err := uc.ProvisionUser(context.Background(), in); !errors.Is(err, ErrInvalidUserInput) {
			t.Fatalf("expected ErrInvalidUserInput, got %v", err)
		}
	})

	t.Run("short password", func(t *testing.T) {
		in := valid
		in.Password = "short"
		if _, err := uc.ProvisionUser(context.Background(), in); !errors.Is(err, ErrInvalidUserInput) {
			t.Fatalf("expected ErrInvalidUserInput, got %v", err)
		}
	})

	t.Run("missing name", func(t *testing.T) {
		in := valid
		in.FirstName = ""
		if _, err := uc.ProvisionUser(context.Background(), in); !errors.Is(err, ErrInvalidUserInput) {
			t.Fatalf("expected ErrInvalidUserInput, got %v", err)
		}
	})

	t.Run("unknown role", func(t *testing.T) {
		in := valid
		in.Role = "superuser"
		if _, err := uc.ProvisionUser(context.Background(), in); !errors.Is(err, ErrInvalidUserInput) {
			t.Fatalf("expected ErrInvalidUserInput, got %v", err)
		}
	})
}

func TestProvisionUserUseCase_Create(t *testing.T) {
	logger := zap.NewNop()

	t.Run("duplicate email", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		users := mock_interfaces.NewMockIUserRepository(ctrl)
		uc := NewProvisionUserUseCase(users, logger)

		users.EXPECT().GetByEmail(gomock.Any(), "taken@example.com").Return(entities.User{ID: "user-1"}, nil)

		_, err := uc.ProvisionUser(context.Background(), ProvisionUserInput{
			Email:     "Taken@Example.com",
			Password:  "s3cret-pass",
			FirstName: "Ada",
			LastName:  "Diallo",
		})
		if !errors.Is(err, ErrEmailAlreadyUsed) {
			t.Fatalf("expected ErrEmailAlreadyUsed, got %v", err)
		}
	})

	t.Run("admin created with hashed password", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		users := mock_interfaces.NewMockIUserRepository(ctrl)
		uc := NewProvisionUserUseCase(users, logger)

		users.EXPECT().GetByEmail(gomock.Any(), "admin@example.com").Return(entities.User{}, nil)
		users.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, u entities.User) (entities.User, error) {
				if u.Email != "admin@example.com" {
					t.Fatalf("expected lowercased email, got %s", u.Email)
				}
				if u.Role != entities.UserRoleAdmin {
					t.Fatalf("expected admin role, got %s", u.Role)
				}
				if u.PasswordHash == "s3cret-pass" || u.PasswordHash == "" {
					t.Fatal("password must be stored hashed")
				}
				if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("s3cret-pass")); err != nil {
					t.Fatalf("hash does not match password: %v", err)
				}
				return u, nil
			})

		created, err := uc.ProvisionUser(context.Background(), ProvisionUserInput{
			Email:     "Admin@Example.com",
			Password:  "s3cret-pass",
			FirstName: "Ada",
			LastName:  "Diallo",
			Role:      "admin",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !created.IsAdmin() {
			t.Fatal("expected admin user")
		}
	})

	t.Run("role defaults to user", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		users := mock_interfaces.NewMockIUserRepository(ctrl)
		uc := NewProvisionUserUseCase(users, logger)

		users.EXPECT().GetByEmail(gomock.Any(), "member@example.com").Return(entities.User{}, nil)
		users.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, u entities.User) (entities.User, error) {
				if u.Role != entities.UserRoleUser {
					t.Fatalf("expected default user role, got %s", u.Role)
				}
				return u, nil
			})

		_, err := uc.ProvisionUser(context.Background(), ProvisionUserInput{
			Email:     "member@example.com",
			Password:  "s3cret-pass",
			FirstName: "Ada",
			LastName:  "Diallo",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}
