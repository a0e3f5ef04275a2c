// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"cbx/internal/domain/entity"
	"cbx/internal/errors"

	"github.com/google/uuid"
)

var (
	// ErrUserNotFound is returned when no user matches the lookup.
	ErrUserNotFound = errors.New("user not found")
	// ErrDuplicateEmail is returned when the email is already taken by another user.
	ErrDuplicateEmail = errors.New("email already exists")
	// ErrDuplicatePhone is returned when the phone is already taken by another user.
	ErrDuplicatePhone = errors.New("phone already exists")
)

// UserRepository defines the standard operations for user persistence.
type UserRepository interface {
	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByEmail retrieves a single user by their email address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindByPhone retrieves a single user by their phone number.
	FindByPhone(ctx context.Context, phone string) (*entity.User, error)

	// FindActiveByLogin retrieves the active user whose email or phone equals identifier.
	FindActiveByLogin(ctx context.Context, identifier string) (*entity.User, error)

	// Create persists a new user and fills in the generated ID and timestamps.
	Create(ctx context.Context, user *entity.User) error

	// Update persists profile changes of an existing user.
	Update(ctx context.Context, user *entity.User) error
}
