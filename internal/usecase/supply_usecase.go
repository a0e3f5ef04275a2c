package usecase

import (
	"context"

	"cbx/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateSupplyItemInput describes a new supply item. Nil Quantity means 1; empty
// Category and Status fall back to "General" and "In Stock".
type CreateSupplyItemInput struct {
	Name     string
	Category string
	Quantity *int
	Status   string
}

// UpdateSupplyItemInput is a partial update. Nil fields are left untouched.
type UpdateSupplyItemInput struct {
	Name     *string
	Category *string
	Quantity *int
	Status   *string
}

// SupplyUsecase manages the caller's household supply list.
type SupplyUsecase interface {
	ListItems(ctx context.Context, userID uuid.UUID) ([]*entity.SupplyItem, error)
	CreateItem(ctx context.Context, userID uuid.UUID, input *CreateSupplyItemInput) (*entity.SupplyItem, error)
	UpdateItem(ctx context.Context, userID, itemID uuid.UUID, input *UpdateSupplyItemInput) (*entity.SupplyItem, error)
	DeleteItem(ctx context.Context, userID, itemID uuid.UUID) error
}
