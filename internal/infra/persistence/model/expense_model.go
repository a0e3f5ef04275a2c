package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CategoryModel mirrors the global 'categories' table.
type CategoryModel struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name string    `gorm:"type:varchar(100);not null;uniqueIndex:idx_categories_name"`
	Icon string    `gorm:"type:varchar(100)"`
}

// TableName explicitly sets the table name for GORM.
func (CategoryModel) TableName() string {
	return "categories"
}

func (m *CategoryModel) BeforeCreate(*gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = newID()
	}

	return nil
}

// ExpenseModel mirrors the 'expenses' table. Amount is stored in cents.
type ExpenseModel struct {
	ID          uuid.UUID      `gorm:"type:uuid;primaryKey"`
	UserID      uuid.UUID      `gorm:"type:uuid;not null;index:idx_expenses_user_date,priority:1"`
	CategoryID  uuid.UUID      `gorm:"type:uuid;not null"`
	Category    *CategoryModel `gorm:"foreignKey:CategoryID"`
	Amount      int64          `gorm:"not null"`
	Description string         `gorm:"type:text;not null"`
	Date        time.Time      `gorm:"not null;index:idx_expenses_user_date,priority:2"`
	IsIncome    bool           `gorm:"not null;default:false"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	User *UserModel `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (ExpenseModel) TableName() string {
	return "expenses"
}

func (m *ExpenseModel) BeforeCreate(*gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = newID()
	}

	return nil
}
