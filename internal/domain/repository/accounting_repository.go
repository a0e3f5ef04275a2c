package repository

import (
	"context"

	"cbx/internal/domain/entity"
	"cbx/internal/errors"

	"github.com/google/uuid"
)

var (
	// ErrCategoryNotFound is returned when a category id does not exist.
	ErrCategoryNotFound = errors.New("category not found")
	// ErrExpenseNotFound is returned when no expense matches both id and owner.
	ErrExpenseNotFound = errors.New("expense not found")
)

// CategoryRepository persists the global expense categories.
type CategoryRepository interface {
	// List returns every category ordered by name.
	List(ctx context.Context) ([]*entity.Category, error)

	// Count returns the number of stored categories.
	Count(ctx context.Context) (int64, error)

	// CreateIfAbsent inserts categories, skipping names that already exist.
	CreateIfAbsent(ctx context.Context, categories []*entity.Category) error

	// FindByID retrieves a single category.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Category, error)
}

// ExpenseRepository persists expenses. Every lookup is scoped by owner.
type ExpenseRepository interface {
	// ListByUser returns the user's expenses, newest date first, with categories loaded.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Expense, error)

	// FindByIDAndUser retrieves an expense only if userID owns it.
	FindByIDAndUser(ctx context.Context, id, userID uuid.UUID) (*entity.Expense, error)

	// Create persists a new expense.
	Create(ctx context.Context, expense *entity.Expense) error

	// Update overwrites the mutable fields of the expense matching expense.ID and expense.UserID.
	Update(ctx context.Context, expense *entity.Expense) error

	// DeleteByIDAndUser removes the expense only if userID owns it.
	DeleteByIDAndUser(ctx context.Context, id, userID uuid.UUID) error

	// SummarizeByUser totals income and spending in minor units.
	SummarizeByUser(ctx context.Context, userID uuid.UUID) (entity.Summary, error)

	// CountByUser returns how many expenses the user recorded.
	CountByUser(ctx context.Context, userID uuid.UUID) (int64, error)
}
