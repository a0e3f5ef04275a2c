package impl

import (
	"context"
	"log/slog"

	deliverycontext "cbx/internal/delivery/context"
	"cbx/internal/domain/entity"
	"cbx/internal/domain/repository"
	"cbx/internal/errors"
	"cbx/internal/usecase"

	"go.uber.org/fx"
)

type identityService struct {
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// IdentityServiceParams holds dependencies for IdentityService, injected by Fx.
type IdentityServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Logger    *slog.Logger
}

// NewIdentityService is the constructor for identityService.
func NewIdentityService(params IdentityServiceParams) usecase.IdentityUsecase {
	return &identityService{
		txManager: params.TxManager,
		logger:    params.Logger,
	}
}

func (srv *identityService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Resolve fails with repository.ErrUserNotFound for unknown or inactive users.
func (srv *identityService) Resolve(ctx context.Context, subject string) (*entity.User, error) {
	var user *entity.User

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var findErr error
		user, findErr = repoFactory.UserRepo().FindActiveByLogin(ctx, subject)

		return findErr
	})
	if err != nil {
		if !errors.Is(err, repository.ErrUserNotFound) {
			srv.log(ctx).Error("Failed to resolve token subject", slog.Any("error", err))
		}

		return nil, errors.Wrap(err, "failed to resolve identity")
	}

	return user, nil
}
