package postgres

import (
	"context"
	"database/sql"
	"testing"

	"cbx/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormlogger "gorm.io/gorm/logger"
)

func TestMigrate_PostgresRunsGoose(t *testing.T) {
	db, err := NewSQLite(":memory:")
	require.NoError(t, err)

	origUp := gooseUp
	t.Cleanup(func() { gooseUp = origUp })

	var calledDir string
	gooseUp = func(_ context.Context, sqlDB *sql.DB, dir string) error {
		assert.NotNil(t, sqlDB)
		calledDir = dir

		return nil
	}

	require.NoError(t, Migrate(context.Background(), db, config.DriverPostgres))
	assert.Equal(t, ".", calledDir)
}

func TestMigrate_SQLiteSkipsGoose(t *testing.T) {
	db, err := NewSQLite("")
	require.NoError(t, err)

	origUp := gooseUp
	t.Cleanup(func() { gooseUp = origUp })

	gooseUp = func(context.Context, *sql.DB, string) error {
		t.Fatal("goose must not run for sqlite")

		return nil
	}

	require.NoError(t, Migrate(context.Background(), db, config.DriverSQLite))
	assert.True(t, db.Migrator().HasTable("users"))
	assert.True(t, db.Migrator().HasTable("responses"))
}

func TestMigrationStatus_WrapsError(t *testing.T) {
	db, err := NewSQLite("")
	require.NoError(t, err)

	origStatus := gooseStatus
	t.Cleanup(func() { gooseStatus = origStatus })

	gooseStatus = func(context.Context, *sql.DB, string) error {
		return sql.ErrConnDone
	}

	err = MigrationStatus(context.Background(), db)
	require.Error(t, err)
	assert.ErrorIs(t, err, sql.ErrConnDone)
	assert.Contains(t, err.Error(), "goose status")
}

func TestNewSQLite_DiscardsStatementLogs(t *testing.T) {
	db, err := NewSQLite("")
	require.NoError(t, err)

	assert.Same(t, gormlogger.Discard, db.Config.Logger)
}
