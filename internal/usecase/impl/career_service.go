package impl

import (
	"context"
	"log/slog"
	"slices"
	"strings"

	deliverycontext "cbx/internal/delivery/context"
	"cbx/internal/domain/entity"
	domainerrors "cbx/internal/domain/errors"
	"cbx/internal/domain/repository"
	"cbx/internal/errors"
	"cbx/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

type careerService struct {
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// CareerServiceParams holds dependencies for CareerService, injected by Fx.
type CareerServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Logger    *slog.Logger
}

// NewCareerService is the constructor for careerService.
func NewCareerService(params CareerServiceParams) usecase.CareerUsecase {
	return &careerService{
		txManager: params.TxManager,
		logger:    params.Logger,
	}
}

func (srv *careerService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *careerService) GetProfile(ctx context.Context, userID uuid.UUID) (*entity.CareerProfile, error) {
	var profile *entity.CareerProfile

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		profileRepo := repoFactory.CareerProfileRepo()

		existing, err := profileRepo.FindByUser(ctx, userID)
		if err == nil {
			profile = existing

			return nil
		}
		if !errors.Is(err, repository.ErrCareerProfileNotFound) {
			return err
		}

		profile = &entity.CareerProfile{
			UserID:     userID,
			Skills:     []string{},
			Experience: []entity.Experience{},
			Education:  []entity.Education{},
		}

		return profileRepo.Create(ctx, profile)
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to load career profile")
	}

	return profile, nil
}

// PutProfile replaces the whole profile, creating it when the user never read it before.
func (srv *careerService) PutProfile(ctx context.Context, userID uuid.UUID, input *usecase.CareerProfileInput) (*entity.CareerProfile, error) {
	if err := validateCareerProfile(input); err != nil {
		return nil, err
	}

	replacement := &entity.CareerProfile{
		UserID:     userID,
		Headline:   strings.TrimSpace(input.Headline),
		Skills:     cleanSkills(input.Skills),
		Experience: nonNilSlice(input.Experience),
		Education:  nonNilSlice(input.Education),
	}

	var profile *entity.CareerProfile

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		profileRepo := repoFactory.CareerProfileRepo()

		existing, err := profileRepo.FindByUser(ctx, userID)
		if errors.Is(err, repository.ErrCareerProfileNotFound) {
			profile = replacement

			return profileRepo.Create(ctx, profile)
		}
		if err != nil {
			return err
		}

		replacement.ID = existing.ID
		if err := profileRepo.Update(ctx, replacement); err != nil {
			return err
		}

		var findErr error
		profile, findErr = profileRepo.FindByUser(ctx, userID)

		return findErr
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to save career profile")
	}

	srv.log(ctx).Debug("Career profile saved", slog.Any("userID", userID))

	return profile, nil
}

func (srv *careerService) ListApplications(ctx context.Context, userID uuid.UUID) ([]*entity.JobApplication, error) {
	var applications []*entity.JobApplication

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var listErr error
		applications, listErr = repoFactory.JobApplicationRepo().ListByUser(ctx, userID)

		return listErr
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list job applications")
	}

	return applications, nil
}

func (srv *careerService) CreateApplication(ctx context.Context, userID uuid.UUID, input *usecase.CreateApplicationInput) (*entity.JobApplication, error) {
	application := &entity.JobApplication{
		UserID:      userID,
		Company:     strings.TrimSpace(input.Company),
		Position:    strings.TrimSpace(input.Position),
		Status:      strings.TrimSpace(input.Status),
		SalaryRange: strings.TrimSpace(input.SalaryRange),
		Notes:       input.Notes,
		AppliedDate: input.AppliedDate.UTC(),
	}
	if application.Status == "" {
		application.Status = entity.ApplicationStatusApplied
	}
	if input.AppliedDate.IsZero() {
		application.AppliedDate = nowUTC()
	}

	if err := validateApplication(application); err != nil {
		return nil, err
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.JobApplicationRepo().Create(ctx, application)
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create job application")
	}

	srv.log(ctx).Debug("Job application created", slog.Any("applicationID", application.ID), slog.Any("userID", userID))

	return application, nil
}

func (srv *careerService) UpdateApplication(
	ctx context.Context,
	userID, applicationID uuid.UUID,
	input *usecase.UpdateApplicationInput,
) (*entity.JobApplication, error) {
	var updated *entity.JobApplication

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		applicationRepo := repoFactory.JobApplicationRepo()

		application, err := applicationRepo.FindByIDAndUser(ctx, applicationID, userID)
		if err != nil {
			return err
		}

		applyApplicationPatch(application, input)
		if err := validateApplication(application); err != nil {
			return err
		}

		if err := applicationRepo.Update(ctx, application); err != nil {
			return err
		}

		updated, err = applicationRepo.FindByIDAndUser(ctx, applicationID, userID)

		return err
	})
	if err != nil {
		return nil, mapApplicationError(err, "failed to update job application")
	}

	return updated, nil
}

func (srv *careerService) DeleteApplication(ctx context.Context, userID, applicationID uuid.UUID) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.JobApplicationRepo().DeleteByIDAndUser(ctx, applicationID, userID)
	})
	if err != nil {
		return mapApplicationError(err, "failed to delete job application")
	}

	return nil
}

func applyApplicationPatch(application *entity.JobApplication, input *usecase.UpdateApplicationInput) {
	if input.Company != nil {
		application.Company = strings.TrimSpace(*input.Company)
	}
	if input.Position != nil {
		application.Position = strings.TrimSpace(*input.Position)
	}
	if input.Status != nil {
		application.Status = strings.TrimSpace(*input.Status)
	}
	if input.SalaryRange != nil {
		application.SalaryRange = strings.TrimSpace(*input.SalaryRange)
	}
	if input.Notes != nil {
		application.Notes = *input.Notes
	}
	if input.AppliedDate != nil && !input.AppliedDate.IsZero() {
		application.AppliedDate = input.AppliedDate.UTC()
	}
}

func validateApplication(application *entity.JobApplication) error {
	problems := fieldErrors{}

	if application.Company == "" {
		problems.add("company", "company is required")
	}
	if application.Position == "" {
		problems.add("position", "position is required")
	}
	if !slices.Contains(entity.ApplicationStatuses, application.Status) {
		problems.add("status", "status must be one of "+strings.Join(entity.ApplicationStatuses, ", "))
	}

	return problems.err()
}

func validateCareerProfile(input *usecase.CareerProfileInput) error {
	problems := fieldErrors{}

	for _, experience := range input.Experience {
		if strings.TrimSpace(experience.Company) == "" || strings.TrimSpace(experience.Role) == "" {
			problems.add("experience", "every experience entry needs a company and a role")
		}
	}
	for _, education := range input.Education {
		if strings.TrimSpace(education.School) == "" {
			problems.add("education", "every education entry needs a school")
		}
	}

	return problems.err()
}

// cleanSkills drops blank and repeated skills, keeping the first spelling.
func cleanSkills(skills []string) []string {
	cleaned := make([]string, 0, len(skills))
	for _, skill := range skills {
		skill = strings.TrimSpace(skill)
		if skill == "" || slices.Contains(cleaned, skill) {
			continue
		}
		cleaned = append(cleaned, skill)
	}

	return cleaned
}

func nonNilSlice[T any](s []T) []T {
	if s == nil {
		return []T{}
	}

	return s
}

func mapApplicationError(err error, message string) error {
	if errors.Is(err, repository.ErrApplicationNotFound) {
		return errors.Wrap(domainerrors.ErrApplicationNotFound, message)
	}

	return errors.Wrap(err, message)
}
