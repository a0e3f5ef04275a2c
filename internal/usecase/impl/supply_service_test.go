package impl

import (
	"context"
	"testing"

	"cbx/internal/domain/entity"
	domainerrors "cbx/internal/domain/errors"
	"cbx/internal/domain/repository"
	"cbx/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSupplyService(t *testing.T) (usecase.SupplyUsecase, repository.TransactionManager) {
	t.Helper()

	txManager := newTestTxManager(t)

	return NewSupplyService(SupplyServiceParams{TxManager: txManager, Logger: newDiscardLogger()}), txManager
}

func TestSupplyService_CreateItem_Defaults(t *testing.T) {
	service, txManager := newTestSupplyService(t)
	user := seedUser(t, txManager, "owner@example.com")

	item, err := service.CreateItem(context.Background(), user.ID, &usecase.CreateSupplyItemInput{Name: " Rice "})
	require.NoError(t, err)
	assert.Equal(t, "Rice", item.Name)
	assert.Equal(t, 1, item.Quantity)
	assert.Equal(t, entity.DefaultSupplyCategory, item.Category)
	assert.Equal(t, entity.SupplyStatusInStock, item.Status)
}

func TestSupplyService_CreateItem_ZeroQuantityIsKept(t *testing.T) {
	service, txManager := newTestSupplyService(t)
	ctx := context.Background()
	user := seedUser(t, txManager, "owner@example.com")

	item, err := service.CreateItem(ctx, user.ID, &usecase.CreateSupplyItemInput{
		Name:     "Soap",
		Quantity: intPtr(0),
		Status:   entity.SupplyStatusToBuy,
	})
	require.NoError(t, err)
	assert.Equal(t, 0, item.Quantity)

	items, err := service.ListItems(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 0, items[0].Quantity)
}

func TestSupplyService_CreateItem_Validation(t *testing.T) {
	service, txManager := newTestSupplyService(t)
	user := seedUser(t, txManager, "owner@example.com")

	tests := []struct {
		name  string
		input *usecase.CreateSupplyItemInput
	}{
		{name: "blank name", input: &usecase.CreateSupplyItemInput{Name: " "}},
		{name: "negative quantity", input: &usecase.CreateSupplyItemInput{Name: "Tea", Quantity: intPtr(-1)}},
		{name: "unknown status", input: &usecase.CreateSupplyItemInput{Name: "Tea", Status: "Lost"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.CreateItem(context.Background(), user.ID, tt.input)
			assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
		})
	}
}

func TestSupplyService_UpdateItem(t *testing.T) {
	service, txManager := newTestSupplyService(t)
	ctx := context.Background()
	owner := seedUser(t, txManager, "owner@example.com")
	other := seedUser(t, txManager, "other@example.com")

	item, err := service.CreateItem(ctx, owner.ID, &usecase.CreateSupplyItemInput{Name: "Milk", Category: "Food", Quantity: intPtr(2)})
	require.NoError(t, err)

	updated, err := service.UpdateItem(ctx, owner.ID, item.ID, &usecase.UpdateSupplyItemInput{
		Quantity: intPtr(0),
		Status:   strPtr(entity.SupplyStatusToBuyUrgent),
		Category: strPtr(""),
	})
	require.NoError(t, err)
	assert.Equal(t, 0, updated.Quantity)
	assert.Equal(t, entity.SupplyStatusToBuyUrgent, updated.Status)
	assert.Equal(t, entity.DefaultSupplyCategory, updated.Category)
	assert.Equal(t, "Milk", updated.Name)

	_, err = service.UpdateItem(ctx, other.ID, item.ID, &usecase.UpdateSupplyItemInput{Name: strPtr("Stolen")})
	assert.ErrorIs(t, err, domainerrors.ErrSupplyItemNotFound)

	assert.ErrorIs(t, service.DeleteItem(ctx, other.ID, item.ID), domainerrors.ErrSupplyItemNotFound)
	require.NoError(t, service.DeleteItem(ctx, owner.ID, item.ID))
}
