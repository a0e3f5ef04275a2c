package repository

import (
	"context"

	"cbx/internal/domain/entity"
	"cbx/internal/errors"

	"github.com/google/uuid"
)

var (
	// ErrCareerProfileNotFound is returned when the user has no career profile yet.
	ErrCareerProfileNotFound = errors.New("career profile not found")
	// ErrApplicationNotFound is returned when no application matches both id and owner.
	ErrApplicationNotFound = errors.New("job application not found")
)

// CareerProfileRepository persists the one-per-user career profile.
type CareerProfileRepository interface {
	FindByUser(ctx context.Context, userID uuid.UUID) (*entity.CareerProfile, error)
	Create(ctx context.Context, profile *entity.CareerProfile) error
	Update(ctx context.Context, profile *entity.CareerProfile) error
}

// JobApplicationRepository persists job applications. Every lookup is scoped by owner.
type JobApplicationRepository interface {
	// ListByUser returns the user's applications, most recently applied first.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.JobApplication, error)
	FindByIDAndUser(ctx context.Context, id, userID uuid.UUID) (*entity.JobApplication, error)
	Create(ctx context.Context, application *entity.JobApplication) error
	// Update overwrites the mutable fields of the application matching application.ID and application.UserID.
	Update(ctx context.Context, application *entity.JobApplication) error
	DeleteByIDAndUser(ctx context.Context, id, userID uuid.UUID) error
	// CountOpenByUser counts applications that are neither offered nor rejected.
	CountOpenByUser(ctx context.Context, userID uuid.UUID) (int64, error)
}
