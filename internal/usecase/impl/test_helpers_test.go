package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"cbx/config"
	"cbx/internal/domain/entity"
	"cbx/internal/domain/repository"
	"cbx/internal/infra/persistence/postgres"

	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newTestTxManager returns a transaction manager over a migrated in-memory SQLite store.
func newTestTxManager(t *testing.T) repository.TransactionManager {
	t.Helper()

	db, err := postgres.NewSQLite(":memory:")
	require.NoError(t, err)
	require.NoError(t, postgres.Migrate(context.Background(), db, config.DriverSQLite))

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	return postgres.NewTransactionManager(db)
}

func seedUser(t *testing.T, txManager repository.TransactionManager, email string) *entity.User {
	t.Helper()

	user := &entity.User{Email: email, PasswordHash: "$2a$10$hash", FullName: "Seeded", IsActive: true}
	err := txManager.Execute(context.Background(), func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.UserRepo().Create(context.Background(), user)
	})
	require.NoError(t, err)

	return user
}

func strPtr(s string) *string { return &s }

func intPtr(i int) *int { return &i }

func boolPtr(b bool) *bool { return &b }
