package usecase

import (
	"context"
	"time"

	"cbx/internal/domain/entity"

	"github.com/google/uuid"
)

// CareerProfileInput replaces every field of the caller's career profile.
type CareerProfileInput struct {
	Headline   string
	Skills     []string
	Experience []entity.Experience
	Education  []entity.Education
}

// CreateApplicationInput describes a new job application. Empty Status means
// "Applied" and a zero AppliedDate means now.
type CreateApplicationInput struct {
	Company     string
	Position    string
	Status      string
	SalaryRange string
	Notes       string
	AppliedDate time.Time
}

// UpdateApplicationInput is a partial update. Nil fields are left untouched.
type UpdateApplicationInput struct {
	Company     *string
	Position    *string
	Status      *string
	SalaryRange *string
	Notes       *string
	AppliedDate *time.Time
}

// CareerUsecase manages the caller's career profile and job applications.
type CareerUsecase interface {
	// GetProfile returns the caller's profile, creating an empty one on first access.
	GetProfile(ctx context.Context, userID uuid.UUID) (*entity.CareerProfile, error)
	PutProfile(ctx context.Context, userID uuid.UUID, input *CareerProfileInput) (*entity.CareerProfile, error)

	ListApplications(ctx context.Context, userID uuid.UUID) ([]*entity.JobApplication, error)
	CreateApplication(ctx context.Context, userID uuid.UUID, input *CreateApplicationInput) (*entity.JobApplication, error)
	UpdateApplication(ctx context.Context, userID, applicationID uuid.UUID, input *UpdateApplicationInput) (*entity.JobApplication, error)
	DeleteApplication(ctx context.Context, userID, applicationID uuid.UUID) error
}
