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

// CareerHandlerParams holds dependencies for CareerHandler, injected by Fx.
type CareerHandlerParams struct {
	fx.In

	CareerUC usecase.CareerUsecase
	Logger   *slog.Logger
}

// CareerHandler serves the career profile and the job application tracker.
type CareerHandler struct {
	careerUC usecase.CareerUsecase
	logger   *slog.Logger
}

// NewCareerHandler is the constructor for CareerHandler.
func NewCareerHandler(params CareerHandlerParams) *CareerHandler {
	return &CareerHandler{
		careerUC: params.CareerUC,
		logger:   params.Logger,
	}
}

type CareerProfileRequest struct {
	Headline   string              `json:"headline" validate:"max=255"`
	Skills     []string            `json:"skills" validate:"dive,max=100"`
	Experience []entity.Experience `json:"experience"`
	Education  []entity.Education  `json:"education"`
}

type CareerProfileResponse struct {
	ID         uuid.UUID           `json:"id"`
	UserID     uuid.UUID           `json:"user_id"`
	Headline   string              `json:"headline"`
	Skills     []string            `json:"skills"`
	Experience []entity.Experience `json:"experience"`
	Education  []entity.Education  `json:"education"`
	UpdatedAt  time.Time           `json:"updated_at"`
}

type CreateApplicationRequest struct {
	Company     string `json:"company"`
	Position    string `json:"position"`
	Status      string `json:"status"`
	SalaryRange string `json:"salary_range" validate:"max=100"`
	Notes       string `json:"notes"`
	AppliedDate Date   `json:"application_date"`
}

// UpdateApplicationRequest is a partial update body.
type UpdateApplicationRequest struct {
	Company     *string `json:"company"`
	Position    *string `json:"position"`
	Status      *string `json:"status"`
	SalaryRange *string `json:"salary_range" validate:"omitempty,max=100"`
	Notes       *string `json:"notes"`
	AppliedDate *Date   `json:"application_date"`
}

type JobApplicationResponse struct {
	ID          uuid.UUID `json:"id"`
	UserID      uuid.UUID `json:"user_id"`
	Company     string    `json:"company"`
	Position    string    `json:"position"`
	Status      string    `json:"status"`
	SalaryRange string    `json:"salary_range"`
	Notes       string    `json:"notes"`
	AppliedDate time.Time `json:"application_date"`
}

// GetProfile returns the caller's profile, creating an empty one on first access.
func (h *CareerHandler) GetProfile(c echo.Context) error {
	userID, err := ownerID(c)
	if err != nil {
		return err
	}

	profile, err := h.careerUC.GetProfile(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newCareerProfileResponse(profile))
}

// PutProfile replaces the caller's profile.
func (h *CareerHandler) PutProfile(c echo.Context) error {
	userID, err := ownerID(c)
	if err != nil {
		return err
	}

	var req CareerProfileRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid profile input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	profile, err := h.careerUC.PutProfile(c.Request().Context(), userID, &usecase.CareerProfileInput{
		Headline:   req.Headline,
		Skills:     req.Skills,
		Experience: req.Experience,
		Education:  req.Education,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newCareerProfileResponse(profile))
}

func (h *CareerHandler) ListApplications(c echo.Context) error {
	userID, err := ownerID(c)
	if err != nil {
		return err
	}

	applications, err := h.careerUC.ListApplications(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	resp := make([]*JobApplicationResponse, 0, len(applications))
	for _, application := range applications {
		resp = append(resp, newJobApplicationResponse(application))
	}

	return response.Success(c, http.StatusOK, resp)
}

func (h *CareerHandler) CreateApplication(c echo.Context) error {
	userID, err := ownerID(c)
	if err != nil {
		return err
	}

	var req CreateApplicationRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid application input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	application, err := h.careerUC.CreateApplication(c.Request().Context(), userID, &usecase.CreateApplicationInput{
		Company:     req.Company,
		Position:    req.Position,
		Status:      req.Status,
		SalaryRange: req.SalaryRange,
		Notes:       req.Notes,
		AppliedDate: req.AppliedDate.Time,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newJobApplicationResponse(application))
}

// UpdateApplication takes ?status=... or a partial JSON body.
func (h *CareerHandler) UpdateApplication(c echo.Context) error {
	userID, err := ownerID(c)
	if err != nil {
		return err
	}

	applicationID, err := pathID(c, "id", domainerrors.ErrApplicationNotFound)
	if err != nil {
		return err
	}

	input := &usecase.UpdateApplicationInput{}
	if status := c.QueryParam("status"); status != "" {
		input.Status = &status
	} else {
		var req UpdateApplicationRequest
		if err := c.Bind(&req); err != nil {
			return response.BindingError(c, "INVALID_INPUT", "Invalid application input")
		}
		if err := c.Validate(&req); err != nil {
			return errors.WithStack(err)
		}

		input.Company = req.Company
		input.Position = req.Position
		input.Status = req.Status
		input.SalaryRange = req.SalaryRange
		input.Notes = req.Notes
		if req.AppliedDate != nil && !req.AppliedDate.IsZero() {
			input.AppliedDate = &req.AppliedDate.Time
		}
	}

	application, err := h.careerUC.UpdateApplication(c.Request().Context(), userID, applicationID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newJobApplicationResponse(application))
}

func (h *CareerHandler) DeleteApplication(c echo.Context) error {
	userID, err := ownerID(c)
	if err != nil {
		return err
	}

	applicationID, err := pathID(c, "id", domainerrors.ErrApplicationNotFound)
	if err != nil {
		return err
	}

	if err := h.careerUC.DeleteApplication(c.Request().Context(), userID, applicationID); err != nil {
		return errors.WithStack(err)
	}

	return deleted(c, "Application")
}

func newCareerProfileResponse(profile *entity.CareerProfile) *CareerProfileResponse {
	resp := &CareerProfileResponse{
		ID:         profile.ID,
		UserID:     profile.UserID,
		Headline:   profile.Headline,
		Skills:     profile.Skills,
		Experience: profile.Experience,
		Education:  profile.Education,
		UpdatedAt:  profile.UpdatedAt,
	}
	// Empty lists render as [] rather than null.
	if resp.Skills == nil {
		resp.Skills = []string{}
	}
	if resp.Experience == nil {
		resp.Experience = []entity.Experience{}
	}
	if resp.Education == nil {
		resp.Education = []entity.Education{}
	}

	return resp
}

func newJobApplicationResponse(application *entity.JobApplication) *JobApplicationResponse {
	return &JobApplicationResponse{
		ID:          application.ID,
		UserID:      application.UserID,
		Company:     application.Company,
		Position:    application.Position,
		Status:      application.Status,
		SalaryRange: application.SalaryRange,
		Notes:       application.Notes,
		AppliedDate: application.AppliedDate,
	}
}
