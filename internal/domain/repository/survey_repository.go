package repository

import (
	"context"

	"cbx/internal/domain/entity"
	"cbx/internal/errors"

	"github.com/google/uuid"
)

// ErrSurveyNotFound is returned when a survey does not exist or is not owned by the caller.
var ErrSurveyNotFound = errors.New("survey not found")

// SurveyRepository persists survey definitions.
type SurveyRepository interface {
	// ListByOwner returns the owner's surveys, newest first.
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Survey, error)

	// FindByID is the public lookup used by respondents. It is not owner-scoped.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Survey, error)

	// FindByIDAndOwner retrieves a survey only if ownerID owns it.
	FindByIDAndOwner(ctx context.Context, id, ownerID uuid.UUID) (*entity.Survey, error)

	Create(ctx context.Context, survey *entity.Survey) error

	// Update overwrites title, description, questions and active flag of the survey
	// matching survey.ID and survey.OwnerID.
	Update(ctx context.Context, survey *entity.Survey) error

	DeleteByIDAndOwner(ctx context.Context, id, ownerID uuid.UUID) error

	CountByOwner(ctx context.Context, ownerID uuid.UUID) (int64, error)
}

// ResponseRepository persists survey responses.
type ResponseRepository interface {
	Create(ctx context.Context, response *entity.Response) error

	// ListBySurvey returns responses in submission order.
	ListBySurvey(ctx context.Context, surveyID uuid.UUID) ([]*entity.Response, error)
}
