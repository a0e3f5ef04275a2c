// Package postgres contains the concrete implementation of the persistence layer using GORM.
package postgres

import (
	"context"

	"cbx/internal/domain/repository"
	"cbx/internal/errors"

	"gorm.io/gorm"
)

// gormTransactionManager implements the domain's TransactionManager interface using GORM.
type gormTransactionManager struct {
	db *gorm.DB
}

// gormRepositoryFactory hands out repositories bound to one transaction.
type gormRepositoryFactory struct {
	tx *gorm.DB // In GORM, a transaction object *gorm.Tx is also a *gorm.DB
}

func (f *gormRepositoryFactory) UserRepo() repository.UserRepository {
	return NewUserRepository(f.tx)
}

func (f *gormRepositoryFactory) CategoryRepo() repository.CategoryRepository {
	return NewCategoryRepository(f.tx)
}

func (f *gormRepositoryFactory) ExpenseRepo() repository.ExpenseRepository {
	return NewExpenseRepository(f.tx)
}

func (f *gormRepositoryFactory) CareerProfileRepo() repository.CareerProfileRepository {
	return NewCareerProfileRepository(f.tx)
}

func (f *gormRepositoryFactory) JobApplicationRepo() repository.JobApplicationRepository {
	return NewJobApplicationRepository(f.tx)
}

func (f *gormRepositoryFactory) SupplyItemRepo() repository.SupplyItemRepository {
	return NewSupplyItemRepository(f.tx)
}

func (f *gormRepositoryFactory) SurveyRepo() repository.SurveyRepository {
	return NewSurveyRepository(f.tx)
}

func (f *gormRepositoryFactory) ResponseRepo() repository.ResponseRepository {
	return NewResponseRepository(f.tx)
}

// NewTransactionManager is the constructor for gormTransactionManager.
// This function will be used as an Fx provider.
func NewTransactionManager(db *gorm.DB) repository.TransactionManager {
	return &gormTransactionManager{db: db}
}

// Execute runs the given function within a single database transaction.
func (tm *gormTransactionManager) Execute(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	tx := tm.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return errors.Wrap(tx.Error, "failed to begin transaction")
	}

	// Roll back on panic, then re-panic so echo's Recover middleware still sees it.
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			panic(r)
		}
	}()

	if err := fn(&gormRepositoryFactory{tx: tx}); err != nil {
		if rbErr := tx.Rollback().Error; rbErr != nil {
			return errors.Join(err, errors.Wrap(rbErr, "transaction rollback failed"))
		}

		return err
	}

	if err := tx.Commit().Error; err != nil {
		return errors.Wrap(err, "failed to commit transaction")
	}

	return nil
}
