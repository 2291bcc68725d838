package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"miprojet_payments/internal/domain/entities"
	"miprojet_payments/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidUserInput = errors.New("invalid user input")
	ErrEmailAlreadyUsed = errors.New("email already in use")
)

const minPasswordLength = 8

// ProvisionUserInput carries the fields of the service-level user creation
// endpoint.

type ProvisionUserInput struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
	Phone     string
	Role      string
}

// IProvisionUserUseCase creates accounts on behalf of the back office,
// including administrator accounts.

type IProvisionUserUseCase interface {
	ProvisionUser(ctx context.Context, in ProvisionUserInput) (entities.User, error)
}

type ProvisionUserUseCase struct {
	users  interfaces.IUserRepository
	logger *zap.Logger
}

var _ IProvisionUserUseCase = (*ProvisionUserUseCase)(nil)

func NewProvisionUserUseCase(users interfaces.IUserRepository, logger *zap.Logger) *ProvisionUserUseCase {
	return &ProvisionUserUseCase{users: users, logger: logger}
}

func (u *ProvisionUserUseCase) ProvisionUser(ctx context.Context, in ProvisionUserInput) (entities.User, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	if email == "" || !strings.Contains(email, "@") {
		return entities.User{}, ErrInvalidUserInput
	}
	if len(in.Password) < minPasswordLength {
		return entities.User{}, ErrInvalidUserInput
	}
	if strings.TrimSpace(in.FirstName) == "" || strings.TrimSpace(in.LastName) == "" {
		return entities.User{}, ErrInvalidUserInput
	}

	role := entities.UserRole(strings.TrimSpace(in.Role))
	if role == "" {
		role = entities.UserRoleUser
	}
	if role != entities.UserRoleUser && role != entities.UserRoleAdmin {
		return entities.User{}, ErrInvalidUserInput
	}

	existing, err := u.users.GetByEmail(ctx, email)
	if err != nil {
		return entities.User{}, fmt.Errorf("checking email %s: %w", email, err)
	}
	if existing.ID != "" {
		return entities.User{}, ErrEmailAlreadyUsed
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return entities.User{}, fmt.Errorf("hashing password: %w", err)
	}

	now := time.Now().UTC()
	created, err := u.users.Create(ctx, entities.User{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: string(hash),
		FirstName:    strings.TrimSpace(in.FirstName),
		LastName:     strings.TrimSpace(in.LastName),
		Phone:        strings.TrimSpace(in.Phone),
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		return entities.User{}, fmt.Errorf("creating user: %w", err)
	}
	u.logger.Info("user provisioned",
		zap.String("user_id", created.ID),
		zap.String("role", string(created.Role)))
	return created, nil
}
