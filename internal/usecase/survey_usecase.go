package usecase

import (
	"context"

	"cbx/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateSurveyInput defines a new survey owned by the caller.
type CreateSurveyInput struct {
	Title       string
	Description string
	Questions   []entity.Question
}

// UpdateSurveyInput is a partial update. Nil fields are left untouched.
type UpdateSurveyInput struct {
	Title       *string
	Description *string
	Questions   []entity.Question
	IsActive    *bool
}

// SurveyQRCode is a rendered share code together with the link it encodes.
type SurveyQRCode struct {
	URL string
	PNG []byte
}

// SurveyUsecase covers the owner side of surveys and the public respondent side.
type SurveyUsecase interface {
	CreateSurvey(ctx context.Context, ownerID uuid.UUID, input *CreateSurveyInput) (*entity.Survey, error)
	ListSurveys(ctx context.Context, ownerID uuid.UUID) ([]*entity.Survey, error)
	UpdateSurvey(ctx context.Context, ownerID, surveyID uuid.UUID, input *UpdateSurveyInput) (*entity.Survey, error)
	DeleteSurvey(ctx context.Context, ownerID, surveyID uuid.UUID) error
	ListResponses(ctx context.Context, ownerID, surveyID uuid.UUID) ([]*entity.Response, error)
	SurveyQRCode(ctx context.Context, ownerID, surveyID uuid.UUID) (*SurveyQRCode, error)

	// GetPublicSurvey is readable by anyone holding the id.
	GetPublicSurvey(ctx context.Context, surveyID uuid.UUID) (*entity.Survey, error)
	// SubmitResponse records an anonymous answer set for an active survey.
	SubmitResponse(ctx context.Context, surveyID uuid.UUID, answers map[string]any) (*entity.Response, error)
}
