package main

import (
	"context"
	"log/slog"

	"cbx/config"
	"cbx/internal/errors"
	logs "cbx/internal/infra/log"
	"cbx/internal/infra/persistence/postgres"
	"cbx/internal/usecase/impl"

	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

func migrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Manage the database schema",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "up",
			Short: "Apply all pending migrations",
			RunE: func(cmd *cobra.Command, args []string) error {
				return withStore(cmd.Context(), func(ctx context.Context, cfg *config.Config, _ *slog.Logger, db *gorm.DB) error {
					return postgres.Migrate(ctx, db, cfg.Database.Driver)
				})
			},
		},
		&cobra.Command{
			Use:   "status",
			Short: "Print the migration status (postgres only)",
			RunE: func(cmd *cobra.Command, args []string) error {
				return withStore(cmd.Context(), func(ctx context.Context, cfg *config.Config, _ *slog.Logger, db *gorm.DB) error {
					if cfg.Database.Driver == config.DriverSQLite {
						return errors.New("migration status is only tracked on postgres")
					}

					return postgres.MigrationStatus(ctx, db)
				})
			},
		},
	)

	return cmd
}

func seedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Insert the default expense categories into an empty store",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStore(cmd.Context(), func(ctx context.Context, cfg *config.Config, logger *slog.Logger, db *gorm.DB) error {
				accounting := impl.NewAccountingService(impl.AccountingServiceParams{
					TxManager: postgres.NewTransactionManager(db),
					Config:    cfg,
					Logger:    logger,
				})

				added, err := accounting.EnsureDefaultCategories(ctx)
				if err != nil {
					return err
				}

				logger.Info("Seeded default categories", slog.Int("added", added))

				return nil
			})
		},
	}
}

// withStore loads config and opens the store outside fx for one-shot commands.
func withStore(ctx context.Context, fn func(ctx context.Context, cfg *config.Config, logger *slog.Logger, db *gorm.DB) error) error {
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := config.New()
	if err != nil {
		return err
	}

	logger, err := logs.New(logs.Params{Config: cfg})
	if err != nil {
		return err
	}

	db, err := postgres.Open(cfg, logger)
	if err != nil {
		return err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return errors.Wrap(err, "failed to get sql.DB")
	}
	defer func() {
		_ = sqlDB.Close()
	}()

	return fn(ctx, cfg, logger, db)
}
