package impl

import (
	"context"
	"log/slog"

	deliverycontext "cbx/internal/delivery/context"
	domainerrors "cbx/internal/domain/errors"
	"cbx/internal/domain/repository"
	"cbx/internal/errors"
	"cbx/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

const portalModuleActive = "active"

type portalService struct {
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// PortalServiceParams holds dependencies for PortalService, injected by Fx.
type PortalServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Logger    *slog.Logger
}

// NewPortalService is the constructor for portalService.
func NewPortalService(params PortalServiceParams) usecase.PortalUsecase {
	return &portalService{
		txManager: params.TxManager,
		logger:    params.Logger,
	}
}

func (srv *portalService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Stats reads every count in one transaction so the tiles agree with each other.
func (srv *portalService) Stats(ctx context.Context, userID uuid.UUID) (*usecase.PortalStats, error) {
	var stats *usecase.PortalStats

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		user, err := repoFactory.UserRepo().FindByID(ctx, userID)
		if err != nil {
			return err
		}

		surveys, err := repoFactory.SurveyRepo().CountByOwner(ctx, userID)
		if err != nil {
			return err
		}

		expenses, err := repoFactory.ExpenseRepo().CountByUser(ctx, userID)
		if err != nil {
			return err
		}

		openApplications, err := repoFactory.JobApplicationRepo().CountOpenByUser(ctx, userID)
		if err != nil {
			return err
		}

		toBuy, err := repoFactory.SupplyItemRepo().CountToBuyByUser(ctx, userID)
		if err != nil {
			return err
		}

		stats = &usecase.PortalStats{
			Greeting: "Hello, " + user.LoginIdentity(),
			Modules: []usecase.PortalModule{
				{ID: "survey", Name: "SurveyStar", Status: portalModuleActive, Notifications: surveys},
				{ID: "accounting", Name: "Accounting", Status: portalModuleActive, Notifications: expenses},
				{ID: "career", Name: "CareerDev", Status: portalModuleActive, Notifications: openApplications},
				{ID: "supply", Name: "SupplyStar", Status: portalModuleActive, Notifications: toBuy},
			},
		}

		return nil
	})
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUserNotFound, "failed to load portal stats")
		}

		srv.log(ctx).Error("Failed to load portal stats", slog.Any("userID", userID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to load portal stats")
	}

	return stats, nil
}
