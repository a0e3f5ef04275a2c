package repository

import (
	"context"

	"cbx/internal/domain/entity"
	"cbx/internal/errors"

	"github.com/google/uuid"
)

// ErrSupplyItemNotFound is returned when no supply item matches both id and owner.
var ErrSupplyItemNotFound = errors.New("supply item not found")

// SupplyItemRepository persists supply items. Every lookup is scoped by owner.
type SupplyItemRepository interface {
	// ListByUser orders by status descending, then newest first.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.SupplyItem, error)
	FindByIDAndUser(ctx context.Context, id, userID uuid.UUID) (*entity.SupplyItem, error)
	Create(ctx context.Context, item *entity.SupplyItem) error
	// Update overwrites the mutable fields of the item matching item.ID and item.UserID.
	Update(ctx context.Context, item *entity.SupplyItem) error
	DeleteByIDAndUser(ctx context.Context, id, userID uuid.UUID) error
	// CountToBuyByUser counts items still on the shopping list.
	CountToBuyByUser(ctx context.Context, userID uuid.UUID) (int64, error)
}
