package qrcode

import (
	"bytes"
	"image/png"
	"testing"

	"cbx/config"

	"github.com/google/uuid"
	"github.com/skip2/go-qrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRecoveryLevel(t *testing.T) {
	tests := []struct {
		in   string
		want qrcode.RecoveryLevel
	}{
		{"L", qrcode.Low},
		{"m", qrcode.Medium},
		{"Q", qrcode.High},
		{"H", qrcode.Highest},
		{"invalid", qrcode.Medium},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, parseRecoveryLevel(tt.in))
		})
	}
}

func TestQRCodeService_SurveyURL(t *testing.T) {
	id := uuid.MustParse("0195a1b2-c3d4-7e5f-8a9b-0c1d2e3f4a5b")

	withBase := NewQRCodeService(256, "M", "https://cbx.example/")
	assert.Equal(t, "https://cbx.example/survey/0195a1b2-c3d4-7e5f-8a9b-0c1d2e3f4a5b", withBase.SurveyURL(id))

	relative := NewQRCodeService(256, "M", "")
	assert.Equal(t, "/survey/0195a1b2-c3d4-7e5f-8a9b-0c1d2e3f4a5b", relative.SurveyURL(id))
}

func TestQRCodeService_GenerateSurveyQR(t *testing.T) {
	tests := []struct {
		name string
		size int
	}{
		{"Small QR", 128},
		{"Medium QR", 256},
		{"Large QR", 512},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewQRCodeService(tt.size, "M", "https://cbx.example")

			qrBytes, err := svc.GenerateSurveyQR(uuid.New())
			require.NoError(t, err)

			img, err := png.Decode(bytes.NewReader(qrBytes))
			require.NoError(t, err)
			assert.Equal(t, tt.size, img.Bounds().Dx())
		})
	}
}

func TestNew_FromConfig(t *testing.T) {
	cfg := &config.Config{QRCode: &config.QRCodeConfig{Size: 200, ErrorCorrectionLevel: "H", BaseURL: "https://cbx.example"}}

	svc := New(cfg)
	id := uuid.New()
	assert.Equal(t, "https://cbx.example/survey/"+id.String(), svc.SurveyURL(id))

	qrBytes, err := svc.GenerateSurveyQR(id)
	require.NoError(t, err)
	assert.NotEmpty(t, qrBytes)
}
