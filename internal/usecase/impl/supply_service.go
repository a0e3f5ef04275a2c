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

const defaultSupplyQuantity = 1

type supplyService struct {
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// SupplyServiceParams holds dependencies for SupplyService, injected by Fx.
type SupplyServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Logger    *slog.Logger
}

// NewSupplyService is the constructor for supplyService.
func NewSupplyService(params SupplyServiceParams) usecase.SupplyUsecase {
	return &supplyService{
		txManager: params.TxManager,
		logger:    params.Logger,
	}
}

func (srv *supplyService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *supplyService) ListItems(ctx context.Context, userID uuid.UUID) ([]*entity.SupplyItem, error) {
	var items []*entity.SupplyItem

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var listErr error
		items, listErr = repoFactory.SupplyItemRepo().ListByUser(ctx, userID)

		return listErr
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list supply items")
	}

	return items, nil
}

func (srv *supplyService) CreateItem(ctx context.Context, userID uuid.UUID, input *usecase.CreateSupplyItemInput) (*entity.SupplyItem, error) {
	item := &entity.SupplyItem{
		UserID:   userID,
		Name:     strings.TrimSpace(input.Name),
		Category: strings.TrimSpace(input.Category),
		Quantity: defaultSupplyQuantity,
		Status:   strings.TrimSpace(input.Status),
	}
	if input.Quantity != nil {
		item.Quantity = *input.Quantity
	}
	if item.Category == "" {
		item.Category = entity.DefaultSupplyCategory
	}
	if item.Status == "" {
		item.Status = entity.SupplyStatusInStock
	}

	if err := validateSupplyItem(item); err != nil {
		return nil, err
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.SupplyItemRepo().Create(ctx, item)
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create supply item")
	}

	srv.log(ctx).Debug("Supply item created", slog.Any("itemID", item.ID), slog.Any("userID", userID))

	return item, nil
}

func (srv *supplyService) UpdateItem(ctx context.Context, userID, itemID uuid.UUID, input *usecase.UpdateSupplyItemInput) (*entity.SupplyItem, error) {
	var updated *entity.SupplyItem

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		itemRepo := repoFactory.SupplyItemRepo()

		item, err := itemRepo.FindByIDAndUser(ctx, itemID, userID)
		if err != nil {
			return err
		}

		if input.Name != nil {
			item.Name = strings.TrimSpace(*input.Name)
		}
		if input.Category != nil {
			item.Category = strings.TrimSpace(*input.Category)
			if item.Category == "" {
				item.Category = entity.DefaultSupplyCategory
			}
		}
		if input.Quantity != nil {
			item.Quantity = *input.Quantity
		}
		if input.Status != nil {
			item.Status = strings.TrimSpace(*input.Status)
		}

		if err := validateSupplyItem(item); err != nil {
			return err
		}

		if err := itemRepo.Update(ctx, item); err != nil {
			return err
		}

		updated, err = itemRepo.FindByIDAndUser(ctx, itemID, userID)

		return err
	})
	if err != nil {
		return nil, mapSupplyError(err, "failed to update supply item")
	}

	return updated, nil
}

func (srv *supplyService) DeleteItem(ctx context.Context, userID, itemID uuid.UUID) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.SupplyItemRepo().DeleteByIDAndUser(ctx, itemID, userID)
	})
	if err != nil {
		return mapSupplyError(err, "failed to delete supply item")
	}

	return nil
}

func validateSupplyItem(item *entity.SupplyItem) error {
	problems := fieldErrors{}

	if item.Name == "" {
		problems.add("name", "name is required")
	}
	if item.Quantity < 0 {
		problems.add("quantity", "quantity must not be negative")
	}
	if !slices.Contains(entity.SupplyStatuses, item.Status) {
		problems.add("status", "status must be one of "+strings.Join(entity.SupplyStatuses, ", "))
	}

	return problems.err()
}

func mapSupplyError(err error, message string) error {
	if errors.Is(err, repository.ErrSupplyItemNotFound) {
		return errors.Wrap(domainerrors.ErrSupplyItemNotFound, message)
	}

	return errors.Wrap(err, message)
}
