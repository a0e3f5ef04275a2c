package usecase

import (
	"context"
	"time"

	"cbx/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ExpenseInput is the full set of expense fields. Create and update both replace every field.
type ExpenseInput struct {
	CategoryID  uuid.UUID
	Amount      decimal.Decimal
	Description string
	Date        time.Time
	IsIncome    bool
}

// SummaryOutput holds the caller's totals converted back from minor units.
type SummaryOutput struct {
	Income  decimal.Decimal
	Expense decimal.Decimal
	Balance decimal.Decimal
}

// AccountingUsecase manages categories and the caller's expenses.
type AccountingUsecase interface {
	// ListCategories seeds the default categories into an empty table before listing.
	ListCategories(ctx context.Context) ([]*entity.Category, error)
	// EnsureDefaultCategories seeds the defaults when no category exists and reports how many were added.
	EnsureDefaultCategories(ctx context.Context) (int, error)

	ListExpenses(ctx context.Context, userID uuid.UUID) ([]*entity.Expense, error)
	CreateExpense(ctx context.Context, userID uuid.UUID, input *ExpenseInput) (*entity.Expense, error)
	UpdateExpense(ctx context.Context, userID, expenseID uuid.UUID, input *ExpenseInput) (*entity.Expense, error)
	DeleteExpense(ctx context.Context, userID, expenseID uuid.UUID) error
	Summary(ctx context.Context, userID uuid.UUID) (*SummaryOutput, error)
}
