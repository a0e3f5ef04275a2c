package usecase

import (
	"context"

	"cbx/internal/domain/entity"
)

// IdentityUsecase maps a verified token subject to the user that owns the request.
type IdentityUsecase interface {
	// Resolve returns the active user whose email or phone equals subject.
	Resolve(ctx context.Context, subject string) (*entity.User, error)
}
