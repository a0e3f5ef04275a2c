package postgres

import (
	"context"
	"database/sql"

	"cbx/config"
	"cbx/internal/errors"
	"cbx/internal/infra/persistence/model"
	"cbx/internal/infra/persistence/postgres/migrations"

	"github.com/pressly/goose/v3"
	"gorm.io/gorm"
)

// gooseUp and gooseStatus are seams over the goose globals.
var (
	gooseUp = func(ctx context.Context, db *sql.DB, dir string) error {
		return goose.UpContext(ctx, db, dir)
	}
	gooseStatus = func(ctx context.Context, db *sql.DB, dir string) error {
		return goose.StatusContext(ctx, db, dir)
	}
)

func setupGoose() error {
	goose.SetBaseFS(migrations.FS)

	return goose.SetDialect(string(goose.DialectPostgres))
}

// Migrate brings the schema up to date: embedded goose migrations on Postgres,
// AutoMigrate of the models on SQLite.
func Migrate(ctx context.Context, db *gorm.DB, driver string) error {
	if driver == config.DriverSQLite {
		if err := db.WithContext(ctx).AutoMigrate(model.All()...); err != nil {
			return errors.Wrap(err, "auto migrate")
		}

		return nil
	}

	sqlDB, err := db.DB()
	if err != nil {
		return errors.Wrap(err, "failed to get sql.DB")
	}
	if err := setupGoose(); err != nil {
		return errors.Wrap(err, "goose setup")
	}
	if err := gooseUp(ctx, sqlDB, "."); err != nil {
		return errors.Wrap(err, "goose up")
	}

	return nil
}

// MigrationStatus prints the goose migration status. Postgres only.
func MigrationStatus(ctx context.Context, db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return errors.Wrap(err, "failed to get sql.DB")
	}
	if err := setupGoose(); err != nil {
		return errors.Wrap(err, "goose setup")
	}

	return errors.Wrap(gooseStatus(ctx, sqlDB, "."), "goose status")
}
