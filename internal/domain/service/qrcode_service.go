package service

import (
	"github.com/google/uuid"
)

// QRCodeService renders shareable QR codes.
type QRCodeService interface {
	// GenerateSurveyQR returns a PNG encoding the public link of a survey.
	GenerateSurveyQR(surveyID uuid.UUID) ([]byte, error)

	// SurveyURL returns the public link encoded by GenerateSurveyQR.
	SurveyURL(surveyID uuid.UUID) string
}
