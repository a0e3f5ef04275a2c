package qrcode

import (
	"strings"

	"cbx/config"
	"cbx/internal/domain/service"
	"cbx/internal/errors"

	"github.com/google/uuid"
	"github.com/skip2/go-qrcode"
)

const surveyPathPrefix = "/survey/"

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
	baseURL              string
}

// New builds the QR service from the qrcode config section.
func New(cfg *config.Config) service.QRCodeService {
	qc := config.QRCodeConfig{}
	if cfg.QRCode != nil {
		qc = *cfg.QRCode
	}

	return NewQRCodeService(qc.Size, qc.ErrorCorrectionLevel, qc.BaseURL)
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(size int, errorCorrectionLevel, baseURL string) service.QRCodeService {
	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: parseRecoveryLevel(errorCorrectionLevel),
		baseURL:              strings.TrimRight(baseURL, "/"),
	}
}

func parseRecoveryLevel(level string) qrcode.RecoveryLevel {
	switch strings.ToUpper(level) {
	case "L":
		return qrcode.Low
	case "Q":
		return qrcode.High
	case "H":
		return qrcode.Highest
	default:
		return qrcode.Medium
	}
}

// SurveyURL is relative when no base URL is configured.
func (s *qrcodeService) SurveyURL(surveyID uuid.UUID) string {
	return s.baseURL + surveyPathPrefix + surveyID.String()
}

// GenerateSurveyQR encodes the public survey link as a PNG.
func (s *qrcodeService) GenerateSurveyQR(surveyID uuid.UUID) ([]byte, error) {
	qrCode, err := qrcode.New(s.SurveyURL(surveyID), s.errorCorrectionLevel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate PNG")
	}

	return pngBytes, nil
}
