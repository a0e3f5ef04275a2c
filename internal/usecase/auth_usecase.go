// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
	"time"

	"cbx/internal/domain/entity"

	"github.com/google/uuid"
)

// TokenTypeBearer is the only token type issued by Login.
const TokenTypeBearer = "bearer"

// --- Input DTOs ---

// RegisterInput defines the data required to register a new user.
// At least one of Email and Phone must be set.
type RegisterInput struct {
	Email    string
	Phone    string
	FullName string
	Password string
}

// LoginInput carries the login identifier (email or phone) and the password.
type LoginInput struct {
	Username string
	Password string
}

// UpdateProfileInput holds the self-service profile changes. Nil fields are left untouched.
type UpdateProfileInput struct {
	FullName *string
	Email    *string
	Phone    *string
}

// --- Output DTOs ---

// LoginOutput returns the session token issued after a successful login.
type LoginOutput struct {
	AccessToken string
	TokenType   string
	ExpiresAt   time.Time
	User        *entity.User
}

// AuthUsecase covers registration, login and the caller's own profile.
type AuthUsecase interface {
	Register(ctx context.Context, input *RegisterInput) (*entity.User, error)
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)
	Me(ctx context.Context, userID uuid.UUID) (*entity.User, error)
	UpdateMe(ctx context.Context, userID uuid.UUID, input *UpdateProfileInput) (*entity.User, error)
}
