package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	deliverycontext "cbx/internal/delivery/context"
	"cbx/internal/domain/entity"
	domainerrors "cbx/internal/domain/errors"
	"cbx/internal/domain/repository"
	"cbx/internal/domain/service"
	"cbx/internal/errors"
	"cbx/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

type surveyService struct {
	txManager repository.TransactionManager
	qrService service.QRCodeService
	logger    *slog.Logger
}

// SurveyServiceParams holds dependencies for SurveyService, injected by Fx.
type SurveyServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	QRService service.QRCodeService
	Logger    *slog.Logger
}

// NewSurveyService is the constructor for surveyService.
func NewSurveyService(params SurveyServiceParams) usecase.SurveyUsecase {
	return &surveyService{
		txManager: params.TxManager,
		qrService: params.QRService,
		logger:    params.Logger,
	}
}

func (srv *surveyService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *surveyService) CreateSurvey(ctx context.Context, ownerID uuid.UUID, input *usecase.CreateSurveyInput) (*entity.Survey, error) {
	survey := &entity.Survey{
		OwnerID:     ownerID,
		Title:       strings.TrimSpace(input.Title),
		Description: strings.TrimSpace(input.Description),
		Questions:   normalizeQuestions(input.Questions),
		IsActive:    true,
	}

	if err := validateSurvey(survey); err != nil {
		return nil, err
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.SurveyRepo().Create(ctx, survey)
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create survey")
	}

	srv.log(ctx).Info("Survey created", slog.Any("surveyID", survey.ID), slog.Any("ownerID", ownerID), slog.Int("questions", len(survey.Questions)))

	return survey, nil
}

func (srv *surveyService) ListSurveys(ctx context.Context, ownerID uuid.UUID) ([]*entity.Survey, error) {
	var surveys []*entity.Survey

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var listErr error
		surveys, listErr = repoFactory.SurveyRepo().ListByOwner(ctx, ownerID)

		return listErr
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list surveys")
	}

	return surveys, nil
}

func (srv *surveyService) UpdateSurvey(ctx context.Context, ownerID, surveyID uuid.UUID, input *usecase.UpdateSurveyInput) (*entity.Survey, error) {
	var updated *entity.Survey

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		surveyRepo := repoFactory.SurveyRepo()

		survey, err := surveyRepo.FindByIDAndOwner(ctx, surveyID, ownerID)
		if err != nil {
			return err
		}

		if input.Title != nil {
			survey.Title = strings.TrimSpace(*input.Title)
		}
		if input.Description != nil {
			survey.Description = strings.TrimSpace(*input.Description)
		}
		if input.Questions != nil {
			survey.Questions = normalizeQuestions(input.Questions)
		}
		if input.IsActive != nil {
			survey.IsActive = *input.IsActive
		}

		if err := validateSurvey(survey); err != nil {
			return err
		}

		if err := surveyRepo.Update(ctx, survey); err != nil {
			return err
		}

		updated, err = surveyRepo.FindByIDAndOwner(ctx, surveyID, ownerID)

		return err
	})
	if err != nil {
		return nil, mapSurveyError(err, "failed to update survey")
	}

	return updated, nil
}

// DeleteSurvey removes the survey together with its responses.
func (srv *surveyService) DeleteSurvey(ctx context.Context, ownerID, surveyID uuid.UUID) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.SurveyRepo().DeleteByIDAndOwner(ctx, surveyID, ownerID)
	})
	if err != nil {
		return mapSurveyError(err, "failed to delete survey")
	}

	srv.log(ctx).Info("Survey deleted", slog.Any("surveyID", surveyID), slog.Any("ownerID", ownerID))

	return nil
}

func (srv *surveyService) ListResponses(ctx context.Context, ownerID, surveyID uuid.UUID) ([]*entity.Response, error) {
	var responses []*entity.Response

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if _, err := repoFactory.SurveyRepo().FindByIDAndOwner(ctx, surveyID, ownerID); err != nil {
			return err
		}

		var listErr error
		responses, listErr = repoFactory.ResponseRepo().ListBySurvey(ctx, surveyID)

		return listErr
	})
	if err != nil {
		return nil, mapSurveyError(err, "failed to list survey responses")
	}

	return responses, nil
}

// SurveyQRCode renders the public link only for the owner.
func (srv *surveyService) SurveyQRCode(ctx context.Context, ownerID, surveyID uuid.UUID) (*usecase.SurveyQRCode, error) {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		_, err := repoFactory.SurveyRepo().FindByIDAndOwner(ctx, surveyID, ownerID)

		return err
	})
	if err != nil {
		return nil, mapSurveyError(err, "failed to load survey for QR code")
	}

	png, err := srv.qrService.GenerateSurveyQR(surveyID)
	if err != nil {
		srv.log(ctx).Error("Failed to generate survey QR code", slog.Any("surveyID", surveyID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to generate survey QR code")
	}

	return &usecase.SurveyQRCode{
		URL: srv.qrService.SurveyURL(surveyID),
		PNG: png,
	}, nil
}

func (srv *surveyService) GetPublicSurvey(ctx context.Context, surveyID uuid.UUID) (*entity.Survey, error) {
	var survey *entity.Survey

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var findErr error
		survey, findErr = repoFactory.SurveyRepo().FindByID(ctx, surveyID)

		return findErr
	})
	if err != nil {
		return nil, mapSurveyError(err, "failed to load survey")
	}

	return survey, nil
}

// SubmitResponse enforces required questions but otherwise stores answers as given.
func (srv *surveyService) SubmitResponse(ctx context.Context, surveyID uuid.UUID, answers map[string]any) (*entity.Response, error) {
	if answers == nil {
		answers = map[string]any{}
	}

	response := &entity.Response{
		SurveyID: surveyID,
		Answers:  answers,
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		survey, err := repoFactory.SurveyRepo().FindByID(ctx, surveyID)
		if err != nil {
			return err
		}

		if !survey.IsActive {
			return domainerrors.ErrSurveyClosed
		}

		if err := validateAnswers(survey.Questions, answers); err != nil {
			return err
		}

		return repoFactory.ResponseRepo().Create(ctx, response)
	})
	if err != nil {
		return nil, mapSurveyError(err, "failed to submit survey response")
	}

	srv.log(ctx).Debug("Survey response recorded", slog.Any("surveyID", surveyID), slog.Any("responseID", response.ID))

	return response, nil
}

func normalizeQuestions(questions []entity.Question) []entity.Question {
	normalized := make([]entity.Question, 0, len(questions))
	for _, question := range questions {
		question.ID = strings.TrimSpace(question.ID)
		question.Label = strings.TrimSpace(question.Label)

		if question.Type.HasOptions() {
			options := make([]string, 0, len(question.Options))
			for _, option := range question.Options {
				if option = strings.TrimSpace(option); option != "" {
					options = append(options, option)
				}
			}
			question.Options = options
		} else {
			question.Options = nil
		}

		normalized = append(normalized, question)
	}

	return normalized
}

func validateSurvey(survey *entity.Survey) error {
	problems := fieldErrors{}

	if survey.Title == "" {
		problems.add("title", "title is required")
	}
	if len(survey.Questions) == 0 {
		problems.add("questions", "at least one question is required")
	}

	seen := make(map[string]struct{}, len(survey.Questions))
	for i, question := range survey.Questions {
		field := fmt.Sprintf("questions[%d]", i)

		switch {
		case question.ID == "":
			problems.add(field, "question id is required")
		case question.Label == "":
			problems.add(field, "question label is required")
		case !validQuestionType(question.Type):
			problems.add(field, "question type must be one of text, multiple_choice, checkbox, rating")
		case question.Type.HasOptions() && len(question.Options) == 0:
			problems.add(field, "choice questions need at least one option")
		}

		if _, dup := seen[question.ID]; dup && question.ID != "" {
			problems.add(field, "question id "+question.ID+" is used twice")
		}
		seen[question.ID] = struct{}{}
	}

	return problems.err()
}

func validQuestionType(questionType entity.QuestionType) bool {
	switch questionType {
	case entity.QuestionTypeText, entity.QuestionTypeMultipleChoice, entity.QuestionTypeCheckbox, entity.QuestionTypeRating:
		return true
	default:
		return false
	}
}

func validateAnswers(questions []entity.Question, answers map[string]any) error {
	problems := fieldErrors{}

	for _, question := range questions {
		if question.Required && isBlankAnswer(answers[question.ID]) {
			problems.add(question.ID, "an answer is required")
		}
	}

	return problems.err()
}

func isBlankAnswer(answer any) bool {
	switch value := answer.(type) {
	case nil:
		return true
	case string:
		return strings.TrimSpace(value) == ""
	case []any:
		return len(value) == 0
	case map[string]any:
		return len(value) == 0
	default:
		return false
	}
}

func mapSurveyError(err error, message string) error {
	if errors.Is(err, repository.ErrSurveyNotFound) {
		return errors.Wrap(domainerrors.ErrSurveyNotFound, message)
	}

	return errors.Wrap(err, message)
}
