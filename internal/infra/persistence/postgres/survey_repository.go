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

// surveyRepository implements the repository.SurveyRepository interface.
type surveyRepository struct {
	db *gorm.DB
}

// NewSurveyRepository is the constructor for surveyRepository.
func NewSurveyRepository(db *gorm.DB) repository.SurveyRepository {
	return &surveyRepository{db: db}
}

func (repo *surveyRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Survey, error) {
	var surveyModels []*model.SurveyModel

	if err := repo.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at DESC").
		Order("id DESC").
		Find(&surveyModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list surveys")
	}

	surveys := make([]*entity.Survey, 0, len(surveyModels))
	for _, surveyM := range surveyModels {
		surveys = append(surveys, toSurveyDomain(surveyM))
	}

	return surveys, nil
}

func (repo *surveyRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Survey, error) {
	return repo.findOne(ctx, "id = ?", id)
}

func (repo *surveyRepository) FindByIDAndOwner(ctx context.Context, id, ownerID uuid.UUID) (*entity.Survey, error) {
	return repo.findOne(ctx, "id = ? AND owner_id = ?", id, ownerID)
}

func (repo *surveyRepository) findOne(ctx context.Context, query string, args ...any) (*entity.Survey, error) {
	var surveyM model.SurveyModel

	if err := repo.db.WithContext(ctx).Where(query, args...).First(&surveyM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSurveyNotFound
		}

		return nil, errors.Wrap(err, "failed to find survey")
	}

	return toSurveyDomain(&surveyM), nil
}

func (repo *surveyRepository) Create(ctx context.Context, survey *entity.Survey) error {
	surveyM := fromSurveyDomain(survey)

	if err := repo.db.WithContext(ctx).Select("*").Omit(clause.Associations).Create(surveyM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create survey")
	}

	survey.ID = surveyM.ID
	survey.CreatedAt = surveyM.CreatedAt
	survey.UpdatedAt = surveyM.UpdatedAt

	return nil
}

func (repo *surveyRepository) Update(ctx context.Context, survey *entity.Survey) error {
	result := repo.db.WithContext(ctx).
		Model(&model.SurveyModel{}).
		Where("id = ? AND owner_id = ?", survey.ID, survey.OwnerID).
		Updates(map[string]any{
			"title":       survey.Title,
			"description": survey.Description,
			"questions":   datatypes.NewJSONSlice(nonNil(survey.Questions)),
			"is_active":   survey.IsActive,
		})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update survey")
	}

	if result.RowsAffected == 0 {
		return repository.ErrSurveyNotFound
	}

	return nil
}

// DeleteByIDAndOwner removes the survey and its responses.
func (repo *surveyRepository) DeleteByIDAndOwner(ctx context.Context, id, ownerID uuid.UUID) error {
	owned := repo.db.WithContext(ctx).
		Model(&model.SurveyModel{}).
		Select("id").
		Where("id = ? AND owner_id = ?", id, ownerID)

	// Responses go first so the delete does not depend on ON DELETE CASCADE being enforced.
	if err := repo.db.WithContext(ctx).
		Where("survey_id IN (?)", owned).
		Delete(&model.ResponseModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to delete survey responses")
	}

	result := repo.db.WithContext(ctx).
		Where("id = ? AND owner_id = ?", id, ownerID).
		Delete(&model.SurveyModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete survey")
	}

	if result.RowsAffected == 0 {
		return repository.ErrSurveyNotFound
	}

	return nil
}

func (repo *surveyRepository) CountByOwner(ctx context.Context, ownerID uuid.UUID) (int64, error) {
	var count int64
	if err := repo.db.WithContext(ctx).Model(&model.SurveyModel{}).Where("owner_id = ?", ownerID).Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count surveys")
	}

	return count, nil
}

// responseRepository implements the repository.ResponseRepository interface.
type responseRepository struct {
	db *gorm.DB
}

// NewResponseRepository is the constructor for responseRepository.
func NewResponseRepository(db *gorm.DB) repository.ResponseRepository {
	return &responseRepository{db: db}
}

func (repo *responseRepository) Create(ctx context.Context, response *entity.Response) error {
	responseM := fromResponseDomain(response)

	if err := repo.db.WithContext(ctx).Omit(clause.Associations).Create(responseM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrSurveyNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create survey response")
	}

	response.ID = responseM.ID
	response.CreatedAt = responseM.CreatedAt

	return nil
}

func (repo *responseRepository) ListBySurvey(ctx context.Context, surveyID uuid.UUID) ([]*entity.Response, error) {
	var responseModels []*model.ResponseModel

	if err := repo.db.WithContext(ctx).
		Where("survey_id = ?", surveyID).
		Order("created_at ASC").
		Order("id ASC").
		Find(&responseModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list survey responses")
	}

	responses := make([]*entity.Response, 0, len(responseModels))
	for _, responseM := range responseModels {
		responses = append(responses, toResponseDomain(responseM))
	}

	return responses, nil
}

// --- Mapper Functions ---

func toSurveyDomain(data *model.SurveyModel) *entity.Survey {
	if data == nil {
		return nil
	}

	return &entity.Survey{
		ID:          data.ID,
		OwnerID:     data.OwnerID,
		Title:       data.Title,
		Description: data.Description,
		Questions:   nonNil([]entity.Question(data.Questions)),
		IsActive:    data.IsActive,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

func fromSurveyDomain(data *entity.Survey) *model.SurveyModel {
	if data == nil {
		return nil
	}

	return &model.SurveyModel{
		ID:          data.ID,
		OwnerID:     data.OwnerID,
		Title:       data.Title,
		Description: data.Description,
		Questions:   datatypes.NewJSONSlice(nonNil(data.Questions)),
		IsActive:    data.IsActive,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

func toResponseDomain(data *model.ResponseModel) *entity.Response {
	if data == nil {
		return nil
	}

	answers := map[string]any(data.Answers)
	if answers == nil {
		answers = map[string]any{}
	}

	return &entity.Response{
		ID:        data.ID,
		SurveyID:  data.SurveyID,
		Answers:   answers,
		CreatedAt: data.CreatedAt,
	}
}

func fromResponseDomain(data *entity.Response) *model.ResponseModel {
	if data == nil {
		return nil
	}

	answers := datatypes.JSONMap(data.Answers)
	if answers == nil {
		answers = datatypes.JSONMap{}
	}

	return &model.ResponseModel{
		ID:        data.ID,
		SurveyID:  data.SurveyID,
		Answers:   answers,
		CreatedAt: data.CreatedAt,
	}
}
