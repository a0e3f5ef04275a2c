package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserModel mirrors the 'users' table. Email and phone are nullable so that
// several users without a phone do not collide on the unique index.
type UserModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Email        *string   `gorm:"type:varchar(255);uniqueIndex:idx_users_email"`
	Phone        *string   `gorm:"type:varchar(32);uniqueIndex:idx_users_phone"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	FullName     string    `gorm:"type:varchar(100)"`
	IsActive     bool      `gorm:"not null;default:true"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}

func (m *UserModel) BeforeCreate(*gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = newID()
	}

	return nil
}
