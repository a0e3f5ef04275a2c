package postgres

import (
	"context"

	"cbx/internal/domain/entity"
	domainerrors "cbx/internal/domain/errors"
	"cbx/internal/domain/repository"
	"cbx/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// careerProfileRepository implements the repository.CareerProfileRepository interface.
type careerProfileRepository struct {
	db *gorm.DB
}

// NewCareerProfileRepository is the constructor for careerProfileRepository.
func NewCareerProfileRepository(db *gorm.DB) repository.CareerProfileRepository {
	return &careerProfileRepository{db: db}
}

func (repo *careerProfileRepository) FindByUser(ctx context.Context, userID uuid.UUID) (*entity.CareerProfile, error) {
	var profileM model.CareerProfileModel

	if err := repo.db.WithContext(ctx).Where("user_id = ?", userID).First(&profileM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCareerProfileNotFound
		}

		return nil, errors.Wrap(err, "failed to find career profile")
	}

	return toCareerProfileDomain(&profileM), nil
}

func (repo *careerProfileRepository) Create(ctx context.Context, profile *entity.CareerProfile) error {
	profileM := fromCareerProfileDomain(profile)

	if err := repo.db.WithContext(ctx).Omit(clause.Associations).Create(profileM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrConflict.WrapMessage("career profile already exists")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create career profile")
	}

	profile.ID = profileM.ID
	profile.CreatedAt = profileM.CreatedAt
	profile.UpdatedAt = profileM.UpdatedAt

	return nil
}

// Update replaces every editable field of the user's profile.
func (repo *careerProfileRepository) Update(ctx context.Context, profile *entity.CareerProfile) error {
	profileM := fromCareerProfileDomain(profile)

	result := repo.db.WithContext(ctx).
		Model(&model.CareerProfileModel{}).
		Where("id = ? AND user_id = ?", profile.ID, profile.UserID).
		Updates(map[string]any{
			"headline":   profileM.Headline,
			"skills":     profileM.Skills,
			"experience": profileM.Experience,
			"education":  profileM.Education,
		})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update career profile")
	}

	if result.RowsAffected == 0 {
		return repository.ErrCareerProfileNotFound
	}

	return nil
}

// jobApplicationRepository implements the repository.JobApplicationRepository interface.
type jobApplicationRepository struct {
	db *gorm.DB
}

// NewJobApplicationRepository is the constructor for jobApplicationRepository.
func NewJobApplicationRepository(db *gorm.DB) repository.JobApplicationRepository {
	return &jobApplicationRepository{db: db}
}

func (repo *jobApplicationRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.JobApplication, error) {
	var applicationModels []*model.JobApplicationModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("applied_date DESC").
		Order("id DESC").
		Find(&applicationModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list job applications")
	}

	applications := make([]*entity.JobApplication, 0, len(applicationModels))
	for _, applicationM := range applicationModels {
		applications = append(applications, toJobApplicationDomain(applicationM))
	}

	return applications, nil
}

func (repo *jobApplicationRepository) FindByIDAndUser(ctx context.Context, id, userID uuid.UUID) (*entity.JobApplication, error) {
	var applicationM model.JobApplicationModel

	if err := repo.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&applicationM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrApplicationNotFound
		}

		return nil, errors.Wrap(err, "failed to find job application")
	}

	return toJobApplicationDomain(&applicationM), nil
}

func (repo *jobApplicationRepository) Create(ctx context.Context, application *entity.JobApplication) error {
	applicationM := fromJobApplicationDomain(application)

	if err := repo.db.WithContext(ctx).Omit(clause.Associations).Create(applicationM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create job application")
	}

	application.ID = applicationM.ID
	application.CreatedAt = applicationM.CreatedAt
	application.UpdatedAt = applicationM.UpdatedAt

	return nil
}

func (repo *jobApplicationRepository) Update(ctx context.Context, application *entity.JobApplication) error {
	result := repo.db.WithContext(ctx).
		Model(&model.JobApplicationModel{}).
		Where("id = ? AND user_id = ?", application.ID, application.UserID).
		Updates(map[string]any{
			"company":      application.Company,
			"position":     application.Position,
			"status":       application.Status,
			"salary_range": application.SalaryRange,
			"notes":        application.Notes,
			"applied_date": application.AppliedDate,
		})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update job application")
	}

	if result.RowsAffected == 0 {
		return repository.ErrApplicationNotFound
	}

	return nil
}

func (repo *jobApplicationRepository) DeleteByIDAndUser(ctx context.Context, id, userID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&model.JobApplicationModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete job application")
	}

	if result.RowsAffected == 0 {
		return repository.ErrApplicationNotFound
	}

	return nil
}

func (repo *jobApplicationRepository) CountOpenByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.JobApplicationModel{}).
		Where("user_id = ?", userID).
		Where("status NOT IN ?", []string{entity.ApplicationStatusOffer, entity.ApplicationStatusRejected}).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count open job applications")
	}

	return count, nil
}

// --- Mapper Functions ---

func toCareerProfileDomain(data *model.CareerProfileModel) *entity.CareerProfile {
	if data == nil {
		return nil
	}

	return &entity.CareerProfile{
		ID:         data.ID,
		UserID:     data.UserID,
		Headline:   data.Headline,
		Skills:     nonNil([]string(data.Skills)),
		Experience: nonNil([]entity.Experience(data.Experience)),
		Education:  nonNil([]entity.Education(data.Education)),
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}

func fromCareerProfileDomain(data *entity.CareerProfile) *model.CareerProfileModel {
	if data == nil {
		return nil
	}

	return &model.CareerProfileModel{
		ID:         data.ID,
		UserID:     data.UserID,
		Headline:   data.Headline,
		Skills:     datatypes.NewJSONSlice(nonNil(data.Skills)),
		Experience: datatypes.NewJSONSlice(nonNil(data.Experience)),
		Education:  datatypes.NewJSONSlice(nonNil(data.Education)),
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}

func toJobApplicationDomain(data *model.JobApplicationModel) *entity.JobApplication {
	if data == nil {
		return nil
	}

	return &entity.JobApplication{
		ID:          data.ID,
		UserID:      data.UserID,
		Company:     data.Company,
		Position:    data.Position,
		Status:      data.Status,
		SalaryRange: data.SalaryRange,
		Notes:       data.Notes,
		AppliedDate: data.AppliedDate,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

func fromJobApplicationDomain(data *entity.JobApplication) *model.JobApplicationModel {
	if data == nil {
		return nil
	}

	return &model.JobApplicationModel{
		ID:          data.ID,
		UserID:      data.UserID,
		Company:     data.Company,
		Position:    data.Position,
		Status:      data.Status,
		SalaryRange: data.SalaryRange,
		Notes:       data.Notes,
		AppliedDate: data.AppliedDate,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

// nonNil keeps JSON columns and responses as [] rather than null.
func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}

	return s
}
