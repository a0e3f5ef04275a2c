package entity

import (
	"time"

	"github.com/google/uuid"
)

// Job application statuses.
const (
	ApplicationStatusApplied      = "Applied"
	ApplicationStatusInterviewing = "Interviewing"
	ApplicationStatusOffer        = "Offer"
	ApplicationStatusRejected     = "Rejected"
)

// ApplicationStatuses lists every accepted application status.
var ApplicationStatuses = []string{
	ApplicationStatusApplied,
	ApplicationStatusInterviewing,
	ApplicationStatusOffer,
	ApplicationStatusRejected,
}

// Experience is one entry of a career profile's work history.
type Experience struct {
	Company     string `json:"company"`
	Role        string `json:"role"`
	Duration    string `json:"duration,omitempty"`
	Description string `json:"description,omitempty"`
}

// Education is one entry of a career profile's education history.
type Education struct {
	School string `json:"school"`
	Degree string `json:"degree,omitempty"`
	Year   string `json:"year,omitempty"`
}

// CareerProfile is the single career summary a user owns.
type CareerProfile struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	Headline   string
	Skills     []string
	Experience []Experience
	Education  []Education
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// JobApplication tracks one application to a company.
type JobApplication struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Company     string
	Position    string
	Status      string
	SalaryRange string
	Notes       string
	AppliedDate time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
