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

// supplyItemRepository implements the repository.SupplyItemRepository interface.
type supplyItemRepository struct {
	db *gorm.DB
}

// NewSupplyItemRepository is the constructor for supplyItemRepository.
func NewSupplyItemRepository(db *gorm.DB) repository.SupplyItemRepository {
	return &supplyItemRepository{db: db}
}

// ListByUser sorts "To Buy (Urgent)" and "To Buy" ahead of stocked items, newest first within a status.
func (repo *supplyItemRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.SupplyItem, error) {
	var itemModels []*model.SupplyItemModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("status DESC").
		Order("created_at DESC").
		Order("id DESC").
		Find(&itemModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list supply items")
	}

	items := make([]*entity.SupplyItem, 0, len(itemModels))
	for _, itemM := range itemModels {
		items = append(items, toSupplyItemDomain(itemM))
	}

	return items, nil
}

func (repo *supplyItemRepository) FindByIDAndUser(ctx context.Context, id, userID uuid.UUID) (*entity.SupplyItem, error) {
	var itemM model.SupplyItemModel

	if err := repo.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&itemM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSupplyItemNotFound
		}

		return nil, errors.Wrap(err, "failed to find supply item")
	}

	return toSupplyItemDomain(&itemM), nil
}

func (repo *supplyItemRepository) Create(ctx context.Context, item *entity.SupplyItem) error {
	itemM := fromSupplyItemDomain(item)

	// Select every column so quantity 0 is stored instead of the column default.
	if err := repo.db.WithContext(ctx).Select("*").Omit(clause.Associations).Create(itemM).Error; err != nil {
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("quantity must not be negative")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create supply item")
	}

	item.ID = itemM.ID
	item.CreatedAt = itemM.CreatedAt
	item.UpdatedAt = itemM.UpdatedAt

	return nil
}

func (repo *supplyItemRepository) Update(ctx context.Context, item *entity.SupplyItem) error {
	result := repo.db.WithContext(ctx).
		Model(&model.SupplyItemModel{}).
		Where("id = ? AND user_id = ?", item.ID, item.UserID).
		Updates(map[string]any{
			"name":     item.Name,
			"category": item.Category,
			"quantity": item.Quantity,
			"status":   item.Status,
		})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update supply item")
	}

	if result.RowsAffected == 0 {
		return repository.ErrSupplyItemNotFound
	}

	return nil
}

func (repo *supplyItemRepository) DeleteByIDAndUser(ctx context.Context, id, userID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&model.SupplyItemModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete supply item")
	}

	if result.RowsAffected == 0 {
		return repository.ErrSupplyItemNotFound
	}

	return nil
}

func (repo *supplyItemRepository) CountToBuyByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.SupplyItemModel{}).
		Where("user_id = ?", userID).
		Where("status IN ?", []string{entity.SupplyStatusToBuy, entity.SupplyStatusToBuyUrgent}).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count supply items to buy")
	}

	return count, nil
}

// --- Mapper Functions ---

func toSupplyItemDomain(data *model.SupplyItemModel) *entity.SupplyItem {
	if data == nil {
		return nil
	}

	return &entity.SupplyItem{
		ID:        data.ID,
		UserID:    data.UserID,
		Name:      data.Name,
		Category:  data.Category,
		Quantity:  data.Quantity,
		Status:    data.Status,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func fromSupplyItemDomain(data *entity.SupplyItem) *model.SupplyItemModel {
	if data == nil {
		return nil
	}

	return &model.SupplyItemModel{
		ID:        data.ID,
		UserID:    data.UserID,
		Name:      data.Name,
		Category:  data.Category,
		Quantity:  data.Quantity,
		Status:    data.Status,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
