package model

import (
	"time"

	"cbx/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// CareerProfileModel mirrors 'career_profiles'. One row per user.
type CareerProfileModel struct {
	ID         uuid.UUID                              `gorm:"type:uuid;primaryKey"`
	UserID     uuid.UUID                              `gorm:"type:uuid;not null;uniqueIndex:idx_career_profiles_user"`
	Headline   string                                 `gorm:"type:varchar(255)"`
	Skills     datatypes.JSONSlice[string]            `gorm:"not null"`
	Experience datatypes.JSONSlice[entity.Experience] `gorm:"not null"`
	Education  datatypes.JSONSlice[entity.Education]  `gorm:"not null"`
	CreatedAt  time.Time
	UpdatedAt  time.Time

	User *UserModel `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (CareerProfileModel) TableName() string {
	return "career_profiles"
}

func (m *CareerProfileModel) BeforeCreate(*gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = newID()
	}

	return nil
}

// JobApplicationModel mirrors 'job_applications'.
type JobApplicationModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;index:idx_job_applications_user_applied,priority:1"`
	Company     string    `gorm:"type:varchar(255);not null"`
	Position    string    `gorm:"type:varchar(255);not null"`
	Status      string    `gorm:"type:varchar(32);not null;default:'Applied'"`
	SalaryRange string    `gorm:"type:varchar(100)"`
	Notes       string    `gorm:"type:text"`
	AppliedDate time.Time `gorm:"not null;index:idx_job_applications_user_applied,priority:2"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	User *UserModel `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (JobApplicationModel) TableName() string {
	return "job_applications"
}

func (m *JobApplicationModel) BeforeCreate(*gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = newID()
	}

	return nil
}
