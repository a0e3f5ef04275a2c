package model

import (
	"time"

	"cbx/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// SurveyModel mirrors 'surveys'. Questions are a typed JSON array.
type SurveyModel struct {
	ID          uuid.UUID                            `gorm:"type:uuid;primaryKey"`
	OwnerID     uuid.UUID                            `gorm:"type:uuid;not null;index"`
	Title       string                               `gorm:"type:varchar(255);not null"`
	Description string                               `gorm:"type:text"`
	Questions   datatypes.JSONSlice[entity.Question] `gorm:"not null"`
	IsActive    bool                                 `gorm:"not null;default:true"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Owner *UserModel `gorm:"foreignKey:OwnerID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (SurveyModel) TableName() string {
	return "surveys"
}

func (m *SurveyModel) BeforeCreate(*gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = newID()
	}

	return nil
}

// ResponseModel mirrors 'responses'. Answers stay a free-form JSON object.
type ResponseModel struct {
	ID        uuid.UUID         `gorm:"type:uuid;primaryKey"`
	SurveyID  uuid.UUID         `gorm:"type:uuid;not null;index"`
	Answers   datatypes.JSONMap `gorm:"not null"`
	CreatedAt time.Time

	Survey *SurveyModel `gorm:"foreignKey:SurveyID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (ResponseModel) TableName() string {
	return "responses"
}

func (m *ResponseModel) BeforeCreate(*gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = newID()
	}

	return nil
}
