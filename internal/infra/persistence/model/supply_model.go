package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SupplyItemModel mirrors 'supply_items'.
type SupplyItemModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Name      string    `gorm:"type:varchar(255);not null"`
	Category  string    `gorm:"type:varchar(100);not null;default:'General'"`
	Quantity  int       `gorm:"not null;default:1"`
	Status    string    `gorm:"type:varchar(32);not null;default:'In Stock'"`
	CreatedAt time.Time
	UpdatedAt time.Time

	User *UserModel `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (SupplyItemModel) TableName() string {
	return "supply_items"
}

func (m *SupplyItemModel) BeforeCreate(*gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = newID()
	}

	return nil
}
