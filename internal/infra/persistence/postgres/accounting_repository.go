package postgres

import (
	"context"

	"cbx/internal/domain/entity"
	domainerrors "cbx/internal/domain/errors"
	"cbx/internal/domain/repository"
	"cbx/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// categoryRepository implements the repository.CategoryRepository interface.
type categoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository is the constructor for categoryRepository.
func NewCategoryRepository(db *gorm.DB) repository.CategoryRepository {
	return &categoryRepository{db: db}
}

func (repo *categoryRepository) List(ctx context.Context) ([]*entity.Category, error) {
	var categoryModels []*model.CategoryModel

	if err := repo.db.WithContext(ctx).Order("name ASC").Find(&categoryModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list categories")
	}

	categories := make([]*entity.Category, 0, len(categoryModels))
	for _, categoryM := range categoryModels {
		categories = append(categories, toCategoryDomain(categoryM))
	}

	return categories, nil
}

func (repo *categoryRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := repo.db.WithContext(ctx).Model(&model.CategoryModel{}).Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count categories")
	}

	return count, nil
}

// CreateIfAbsent relies on the unique name index so concurrent seeders cannot duplicate rows.
func (repo *categoryRepository) CreateIfAbsent(ctx context.Context, categories []*entity.Category) error {
	if len(categories) == 0 {
		return nil
	}

	categoryModels := make([]*model.CategoryModel, 0, len(categories))
	for _, category := range categories {
		categoryModels = append(categoryModels, &model.CategoryModel{ID: category.ID, Name: category.Name, Icon: category.Icon})
	}

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "name"}}, DoNothing: true}).
		Create(&categoryModels).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to seed categories")
	}

	return nil
}

func (repo *categoryRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Category, error) {
	var categoryM model.CategoryModel

	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&categoryM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCategoryNotFound
		}

		return nil, errors.Wrap(err, "failed to find category by id")
	}

	return toCategoryDomain(&categoryM), nil
}

// expenseRepository implements the repository.ExpenseRepository interface.
type expenseRepository struct {
	db *gorm.DB
}

// NewExpenseRepository is the constructor for expenseRepository.
func NewExpenseRepository(db *gorm.DB) repository.ExpenseRepository {
	return &expenseRepository{db: db}
}

func (repo *expenseRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Expense, error) {
	var expenseModels []*model.ExpenseModel

	if err := repo.db.WithContext(ctx).
		Preload("Category").
		Where("user_id = ?", userID).
		Order("date DESC").
		Order("id DESC").
		Find(&expenseModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list expenses")
	}

	expenses := make([]*entity.Expense, 0, len(expenseModels))
	for _, expenseM := range expenseModels {
		expenses = append(expenses, toExpenseDomain(expenseM))
	}

	return expenses, nil
}

func (repo *expenseRepository) FindByIDAndUser(ctx context.Context, id, userID uuid.UUID) (*entity.Expense, error) {
	var expenseM model.ExpenseModel

	if err := repo.db.WithContext(ctx).
		Preload("Category").
		Where("id = ? AND user_id = ?", id, userID).
		First(&expenseM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrExpenseNotFound
		}

		return nil, errors.Wrap(err, "failed to find expense")
	}

	return toExpenseDomain(&expenseM), nil
}

func (repo *expenseRepository) Create(ctx context.Context, expense *entity.Expense) error {
	expenseM := fromExpenseDomain(expense)

	if err := repo.db.WithContext(ctx).Omit(clause.Associations).Create(expenseM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrCategoryNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create expense")
	}

	expense.ID = expenseM.ID
	expense.CreatedAt = expenseM.CreatedAt
	expense.UpdatedAt = expenseM.UpdatedAt

	return nil
}

func (repo *expenseRepository) Update(ctx context.Context, expense *entity.Expense) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ExpenseModel{}).
		Where("id = ? AND user_id = ?", expense.ID, expense.UserID).
		Updates(map[string]any{
			"category_id": expense.CategoryID,
			"amount":      expense.AmountCents,
			"description": expense.Description,
			"date":        expense.Date,
			"is_income":   expense.IsIncome,
		})

	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			return repository.ErrCategoryNotFound
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update expense")
	}

	if result.RowsAffected == 0 {
		return repository.ErrExpenseNotFound
	}

	return nil
}

func (repo *expenseRepository) DeleteByIDAndUser(ctx context.Context, id, userID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&model.ExpenseModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete expense")
	}

	if result.RowsAffected == 0 {
		return repository.ErrExpenseNotFound
	}

	return nil
}

// SummarizeByUser sums in SQL so totals stay exact integers.
func (repo *expenseRepository) SummarizeByUser(ctx context.Context, userID uuid.UUID) (entity.Summary, error) {
	var row struct {
		Income  int64
		Expense int64
	}

	if err := repo.db.WithContext(ctx).
		Model(&model.ExpenseModel{}).
		Select(
			"CAST(COALESCE(SUM(CASE WHEN is_income THEN amount ELSE 0 END), 0) AS BIGINT) AS income, "+
				"CAST(COALESCE(SUM(CASE WHEN is_income THEN 0 ELSE amount END), 0) AS BIGINT) AS expense",
		).
		Where("user_id = ?", userID).
		Scan(&row).Error; err != nil {
		return entity.Summary{}, errors.Wrap(err, "failed to summarize expenses")
	}

	return entity.Summary{IncomeCents: row.Income, ExpenseCents: row.Expense}, nil
}

func (repo *expenseRepository) CountByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	var count int64
	if err := repo.db.WithContext(ctx).Model(&model.ExpenseModel{}).Where("user_id = ?", userID).Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count expenses")
	}

	return count, nil
}

// --- Mapper Functions ---

func toCategoryDomain(data *model.CategoryModel) *entity.Category {
	if data == nil {
		return nil
	}

	return &entity.Category{
		ID:   data.ID,
		Name: data.Name,
		Icon: data.Icon,
	}
}

func toExpenseDomain(data *model.ExpenseModel) *entity.Expense {
	if data == nil {
		return nil
	}

	return &entity.Expense{
		ID:          data.ID,
		UserID:      data.UserID,
		CategoryID:  data.CategoryID,
		Category:    toCategoryDomain(data.Category),
		AmountCents: data.Amount,
		Description: data.Description,
		Date:        data.Date,
		IsIncome:    data.IsIncome,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

func fromExpenseDomain(data *entity.Expense) *model.ExpenseModel {
	if data == nil {
		return nil
	}

	return &model.ExpenseModel{
		ID:          data.ID,
		UserID:      data.UserID,
		CategoryID:  data.CategoryID,
		Amount:      data.AmountCents,
		Description: data.Description,
		Date:        data.Date,
		IsIncome:    data.IsIncome,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}
