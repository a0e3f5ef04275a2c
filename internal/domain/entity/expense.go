package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Category classifies expenses. Categories are global, not owned.
type Category struct {
	ID   uuid.UUID
	Name string
	Icon string
}

// DefaultCategories is the fixed list seeded into an empty category table.
var DefaultCategories = []Category{
	{Name: "Food", Icon: "Utensils"},
	{Name: "Transport", Icon: "Car"},
	{Name: "Housing", Icon: "Home"},
	{Name: "Salary", Icon: "Banknote"},
	{Name: "Entertainment", Icon: "Film"},
	{Name: "Utilities", Icon: "Zap"},
	{Name: "Shopping", Icon: "ShoppingBag"},
	{Name: "Health", Icon: "Heart"},
	{Name: "Other", Icon: "MoreHorizontal"},
}

// Expense is a single income or spending record owned by a user.
// AmountCents is always non-negative; IsIncome carries the direction.
type Expense struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	CategoryID  uuid.UUID
	Category    *Category
	AmountCents int64
	Description string
	Date        time.Time
	IsIncome    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Amount converts the stored minor units back to a decimal amount.
func (e *Expense) Amount() decimal.Decimal {
	return CentsToAmount(e.AmountCents)
}

// AmountToCents scales a decimal amount by 100 and truncates toward zero.
func AmountToCents(amount decimal.Decimal) int64 {
	return amount.Mul(hundred).Truncate(0).IntPart()
}

// CentsToAmount is the inverse of AmountToCents for amounts with at most two decimals.
func CentsToAmount(cents int64) decimal.Decimal {
	return decimal.New(cents, -2)
}

// Summary aggregates a user's expenses in minor units.
type Summary struct {
	IncomeCents  int64
	ExpenseCents int64
}

// BalanceCents is income minus expense.
func (s Summary) BalanceCents() int64 {
	return s.IncomeCents - s.ExpenseCents
}
