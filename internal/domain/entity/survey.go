package entity

import (
	"time"

	"github.com/google/uuid"
)

// QuestionType enumerates the question kinds a survey can hold.
type QuestionType string

const (
	QuestionTypeText           QuestionType = "text"
	QuestionTypeMultipleChoice QuestionType = "multiple_choice"
	QuestionTypeCheckbox       QuestionType = "checkbox"
	QuestionTypeRating         QuestionType = "rating"
)

// HasOptions reports whether the question type is answered by picking from options.
func (t QuestionType) HasOptions() bool {
	return t == QuestionTypeMultipleChoice || t == QuestionTypeCheckbox
}

// Question is one typed entry of a survey definition.
type Question struct {
	ID       string       `json:"id"`
	Type     QuestionType `json:"type"`
	Label    string       `json:"label"`
	Options  []string     `json:"options,omitempty"`
	Required bool         `json:"required"`
}

// Survey is owned by its creator but readable by anyone who has its id.
type Survey struct {
	ID          uuid.UUID
	OwnerID     uuid.UUID
	Title       string
	Description string
	Questions   []Question
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Response is an anonymous submission to a survey. Answers map question ids to
// respondent-defined values.
type Response struct {
	ID        uuid.UUID
	SurveyID  uuid.UUID
	Answers   map[string]any
	CreatedAt time.Time
}
