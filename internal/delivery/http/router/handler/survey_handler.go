package handler

import (
	"log/slog"
	"net/http"
	"time"

	"cbx/internal/delivery/http/response"
	"cbx/internal/domain/entity"
	domainerrors "cbx/internal/domain/errors"
	"cbx/internal/errors"
	"cbx/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const headerSurveyURL = "X-Survey-Url"

// SurveyHandlerParams holds dependencies for SurveyHandler, injected by Fx.
type SurveyHandlerParams struct {
	fx.In

	SurveyUC usecase.SurveyUsecase
	Logger   *slog.Logger
}

// SurveyHandler serves survey owners and anonymous respondents.
type SurveyHandler struct {
	surveyUC usecase.SurveyUsecase
	logger   *slog.Logger
}

// NewSurveyHandler is the constructor for SurveyHandler.
func NewSurveyHandler(params SurveyHandlerParams) *SurveyHandler {
	return &SurveyHandler{
		surveyUC: params.SurveyUC,
		logger:   params.Logger,
	}
}

type CreateSurveyRequest struct {
	Title       string            `json:"title" validate:"max=255"`
	Description string            `json:"description"`
	Questions   []entity.Question `json:"questions"`
}

type UpdateSurveyRequest struct {
	Title       *string           `json:"title" validate:"omitempty,max=255"`
	Description *string           `json:"description"`
	Questions   []entity.Question `json:"questions"`
	IsActive    *bool             `json:"is_active"`
}

type SubmitResponseRequest struct {
	Answers map[string]any `json:"answers" validate:"required"`
}

type SurveyResponse struct {
	ID          uuid.UUID         `json:"id"`
	OwnerID     uuid.UUID         `json:"owner_id"`
	Title       string            `json:"title"`
	Description string            `json:"description"`
	Questions   []entity.Question `json:"questions"`
	IsActive    bool              `json:"is_active"`
	CreatedAt   time.Time         `json:"created_at"`
}

// PublicSurveyResponse omits the owner.
type PublicSurveyResponse struct {
	ID          uuid.UUID         `json:"id"`
	Title       string            `json:"title"`
	Description string            `json:"description"`
	Questions   []entity.Question `json:"questions"`
	IsActive    bool              `json:"is_active"`
}

type AnswerSetResponse struct {
	ID        uuid.UUID      `json:"id"`
	SurveyID  uuid.UUID      `json:"survey_id"`
	Answers   map[string]any `json:"answers"`
	CreatedAt time.Time      `json:"created_at"`
}

func (h *SurveyHandler) CreateSurvey(c echo.Context) error {
	userID, err := ownerID(c)
	if err != nil {
		return err
	}

	var req CreateSurveyRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid survey input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	survey, err := h.surveyUC.CreateSurvey(c.Request().Context(), userID, &usecase.CreateSurveyInput{
		Title:       req.Title,
		Description: req.Description,
		Questions:   req.Questions,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newSurveyResponse(survey))
}

// ListSurveys returns the caller's own surveys.
func (h *SurveyHandler) ListSurveys(c echo.Context) error {
	userID, err := ownerID(c)
	if err != nil {
		return err
	}

	surveys, err := h.surveyUC.ListSurveys(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	resp := make([]*SurveyResponse, 0, len(surveys))
	for _, survey := range surveys {
		resp = append(resp, newSurveyResponse(survey))
	}

	return response.Success(c, http.StatusOK, resp)
}

// GetSurvey is public so respondents can load the form.
func (h *SurveyHandler) GetSurvey(c echo.Context) error {
	surveyID, err := pathID(c, "id", domainerrors.ErrSurveyNotFound)
	if err != nil {
		return err
	}

	survey, err := h.surveyUC.GetPublicSurvey(c.Request().Context(), surveyID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, &PublicSurveyResponse{
		ID:          survey.ID,
		Title:       survey.Title,
		Description: survey.Description,
		Questions:   questionsOrEmpty(survey.Questions),
		IsActive:    survey.IsActive,
	})
}

func (h *SurveyHandler) UpdateSurvey(c echo.Context) error {
	userID, err := ownerID(c)
	if err != nil {
		return err
	}

	surveyID, err := pathID(c, "id", domainerrors.ErrSurveyNotFound)
	if err != nil {
		return err
	}

	var req UpdateSurveyRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid survey input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	survey, err := h.surveyUC.UpdateSurvey(c.Request().Context(), userID, surveyID, &usecase.UpdateSurveyInput{
		Title:       req.Title,
		Description: req.Description,
		Questions:   req.Questions,
		IsActive:    req.IsActive,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newSurveyResponse(survey))
}

// DeleteSurvey removes the survey together with its responses.
func (h *SurveyHandler) DeleteSurvey(c echo.Context) error {
	userID, err := ownerID(c)
	if err != nil {
		return err
	}

	surveyID, err := pathID(c, "id", domainerrors.ErrSurveyNotFound)
	if err != nil {
		return err
	}

	if err := h.surveyUC.DeleteSurvey(c.Request().Context(), userID, surveyID); err != nil {
		return errors.WithStack(err)
	}

	return deleted(c, "Survey")
}

// SubmitResponse is public and anonymous.
func (h *SurveyHandler) SubmitResponse(c echo.Context) error {
	surveyID, err := pathID(c, "id", domainerrors.ErrSurveyNotFound)
	if err != nil {
		return err
	}

	var req SubmitResponseRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid response input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	answerSet, err := h.surveyUC.SubmitResponse(c.Request().Context(), surveyID, req.Answers)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newAnswerSetResponse(answerSet))
}

func (h *SurveyHandler) ListResponses(c echo.Context) error {
	userID, err := ownerID(c)
	if err != nil {
		return err
	}

	surveyID, err := pathID(c, "id", domainerrors.ErrSurveyNotFound)
	if err != nil {
		return err
	}

	answerSets, err := h.surveyUC.ListResponses(c.Request().Context(), userID, surveyID)
	if err != nil {
		return errors.WithStack(err)
	}

	resp := make([]*AnswerSetResponse, 0, len(answerSets))
	for _, answerSet := range answerSets {
		resp = append(resp, newAnswerSetResponse(answerSet))
	}

	return response.Success(c, http.StatusOK, resp)
}

// QRCode streams the PNG share code. The encoded link is echoed in a header.
func (h *SurveyHandler) QRCode(c echo.Context) error {
	userID, err := ownerID(c)
	if err != nil {
		return err
	}

	surveyID, err := pathID(c, "id", domainerrors.ErrSurveyNotFound)
	if err != nil {
		return err
	}

	qr, err := h.surveyUC.SurveyQRCode(c.Request().Context(), userID, surveyID)
	if err != nil {
		return errors.WithStack(err)
	}

	c.Response().Header().Set(headerSurveyURL, qr.URL)

	return c.Blob(http.StatusOK, "image/png", qr.PNG)
}

func newSurveyResponse(survey *entity.Survey) *SurveyResponse {
	return &SurveyResponse{
		ID:          survey.ID,
		OwnerID:     survey.OwnerID,
		Title:       survey.Title,
		Description: survey.Description,
		Questions:   questionsOrEmpty(survey.Questions),
		IsActive:    survey.IsActive,
		CreatedAt:   survey.CreatedAt,
	}
}

func newAnswerSetResponse(answerSet *entity.Response) *AnswerSetResponse {
	answers := answerSet.Answers
	if answers == nil {
		answers = map[string]any{}
	}

	return &AnswerSetResponse{
		ID:        answerSet.ID,
		SurveyID:  answerSet.SurveyID,
		Answers:   answers,
		CreatedAt: answerSet.CreatedAt,
	}
}

func questionsOrEmpty(questions []entity.Question) []entity.Question {
	if questions == nil {
		return []entity.Question{}
	}

	return questions
}
