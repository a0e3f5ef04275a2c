package impl

import (
	"context"
	"testing"

	"cbx/internal/domain/entity"
	domainerrors "cbx/internal/domain/errors"
	"cbx/internal/domain/repository"
	mockSvc "cbx/internal/mocks/service"
	"cbx/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type surveyServiceFixtures struct {
	service   usecase.SurveyUsecase
	txManager repository.TransactionManager
	qrService *mockSvc.MockQRCodeService
}

func createTestSurveyService(t *testing.T) surveyServiceFixtures {
	txManager := newTestTxManager(t)
	qrService := mockSvc.NewMockQRCodeService(t)

	return surveyServiceFixtures{
		service: NewSurveyService(SurveyServiceParams{
			TxManager: txManager,
			QRService: qrService,
			Logger:    newDiscardLogger(),
		}),
		txManager: txManager,
		qrService: qrService,
	}
}

func lunchSurveyInput() *usecase.CreateSurveyInput {
	return &usecase.CreateSurveyInput{
		Title:       " Lunch poll ",
		Description: "Where should we eat?",
		Questions: []entity.Question{
			{ID: "place", Type: entity.QuestionTypeMultipleChoice, Label: "Place", Options: []string{"Noodles", " ", "Curry"}, Required: true},
			{ID: "comment", Type: entity.QuestionTypeText, Label: "Anything else?", Options: []string{"ignored"}},
		},
	}
}

func TestSurveyService_CreateSurvey(t *testing.T) {
	fx := createTestSurveyService(t)
	ctx := context.Background()
	owner := seedUser(t, fx.txManager, "owner@example.com")

	survey, err := fx.service.CreateSurvey(ctx, owner.ID, lunchSurveyInput())
	require.NoError(t, err)
	assert.Equal(t, "Lunch poll", survey.Title)
	assert.True(t, survey.IsActive)
	assert.Equal(t, []string{"Noodles", "Curry"}, survey.Questions[0].Options)
	assert.Nil(t, survey.Questions[1].Options)

	list, err := fx.service.ListSurveys(ctx, owner.ID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, survey.ID, list[0].ID)
}

func TestSurveyService_CreateSurvey_Validation(t *testing.T) {
	fx := createTestSurveyService(t)
	owner := seedUser(t, fx.txManager, "owner@example.com")

	_, err := fx.service.CreateSurvey(context.Background(), owner.ID, &usecase.CreateSurveyInput{
		Title: "Broken",
		Questions: []entity.Question{
			{ID: "q1", Type: entity.QuestionTypeCheckbox, Label: "Pick", Options: []string{" "}},
			{ID: "q1", Type: "slider", Label: "Rate"},
		},
	})
	require.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	var appErr *domainerrors.BaseError
	require.True(t, errors.As(err, &appErr))
	details := appErr.Details().(map[string]string)
	assert.Contains(t, details["questions[0]"], "option")
	assert.Contains(t, details["questions[1]"], "type")

	_, err = fx.service.CreateSurvey(context.Background(), owner.ID, &usecase.CreateSurveyInput{Title: "Empty"})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestSurveyService_UpdateSurvey(t *testing.T) {
	fx := createTestSurveyService(t)
	ctx := context.Background()
	owner := seedUser(t, fx.txManager, "owner@example.com")
	other := seedUser(t, fx.txManager, "other@example.com")

	survey, err := fx.service.CreateSurvey(ctx, owner.ID, lunchSurveyInput())
	require.NoError(t, err)

	updated, err := fx.service.UpdateSurvey(ctx, owner.ID, survey.ID, &usecase.UpdateSurveyInput{
		Title:    strPtr("Dinner poll"),
		IsActive: boolPtr(false),
	})
	require.NoError(t, err)
	assert.Equal(t, "Dinner poll", updated.Title)
	assert.False(t, updated.IsActive)
	assert.Len(t, updated.Questions, 2, "questions untouched when omitted")

	_, err = fx.service.UpdateSurvey(ctx, other.ID, survey.ID, &usecase.UpdateSurveyInput{Title: strPtr("Mine now")})
	assert.ErrorIs(t, err, domainerrors.ErrSurveyNotFound)

	_, err = fx.service.UpdateSurvey(ctx, owner.ID, survey.ID, &usecase.UpdateSurveyInput{Questions: []entity.Question{}})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestSurveyService_SubmitResponse(t *testing.T) {
	fx := createTestSurveyService(t)
	ctx := context.Background()
	owner := seedUser(t, fx.txManager, "owner@example.com")

	survey, err := fx.service.CreateSurvey(ctx, owner.ID, lunchSurveyInput())
	require.NoError(t, err)

	public, err := fx.service.GetPublicSurvey(ctx, survey.ID)
	require.NoError(t, err)
	assert.Equal(t, survey.Title, public.Title)

	_, err = fx.service.SubmitResponse(ctx, survey.ID, map[string]any{"place": "  "})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	response, err := fx.service.SubmitResponse(ctx, survey.ID, map[string]any{"place": "Curry", "extra": []any{"kept", 1.0}})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, response.ID)

	_, err = fx.service.SubmitResponse(ctx, uuid.New(), map[string]any{})
	assert.ErrorIs(t, err, domainerrors.ErrSurveyNotFound)

	_, err = fx.service.UpdateSurvey(ctx, owner.ID, survey.ID, &usecase.UpdateSurveyInput{IsActive: boolPtr(false)})
	require.NoError(t, err)

	_, err = fx.service.SubmitResponse(ctx, survey.ID, map[string]any{"place": "Noodles"})
	assert.ErrorIs(t, err, domainerrors.ErrSurveyClosed)

	responses, err := fx.service.ListResponses(ctx, owner.ID, survey.ID)
	require.NoError(t, err)
	require.Len(t, responses, 1)
	assert.Equal(t, "Curry", responses[0].Answers["place"])
	assert.Equal(t, []any{"kept", 1.0}, responses[0].Answers["extra"])
}

func TestSurveyService_OwnerOnlyOperations(t *testing.T) {
	fx := createTestSurveyService(t)
	ctx := context.Background()
	owner := seedUser(t, fx.txManager, "owner@example.com")
	other := seedUser(t, fx.txManager, "other@example.com")

	survey, err := fx.service.CreateSurvey(ctx, owner.ID, lunchSurveyInput())
	require.NoError(t, err)

	_, err = fx.service.ListResponses(ctx, other.ID, survey.ID)
	assert.ErrorIs(t, err, domainerrors.ErrSurveyNotFound)

	_, err = fx.service.SurveyQRCode(ctx, other.ID, survey.ID)
	assert.ErrorIs(t, err, domainerrors.ErrSurveyNotFound)

	assert.ErrorIs(t, fx.service.DeleteSurvey(ctx, other.ID, survey.ID), domainerrors.ErrSurveyNotFound)

	require.NoError(t, fx.service.DeleteSurvey(ctx, owner.ID, survey.ID))
	_, err = fx.service.GetPublicSurvey(ctx, survey.ID)
	assert.ErrorIs(t, err, domainerrors.ErrSurveyNotFound)
}

func TestSurveyService_SurveyQRCode(t *testing.T) {
	fx := createTestSurveyService(t)
	ctx := context.Background()
	owner := seedUser(t, fx.txManager, "owner@example.com")

	survey, err := fx.service.CreateSurvey(ctx, owner.ID, lunchSurveyInput())
	require.NoError(t, err)

	png := []byte{0x89, 'P', 'N', 'G'}
	fx.qrService.EXPECT().GenerateSurveyQR(survey.ID).Return(png, nil)
	fx.qrService.EXPECT().SurveyURL(survey.ID).Return("https://cbx.example.com/survey/" + survey.ID.String())

	qr, err := fx.service.SurveyQRCode(ctx, owner.ID, survey.ID)
	require.NoError(t, err)
	assert.Equal(t, png, qr.PNG)
	assert.Equal(t, "https://cbx.example.com/survey/"+survey.ID.String(), qr.URL)
}

func TestSurveyService_SurveyQRCode_EncodeFailure(t *testing.T) {
	fx := createTestSurveyService(t)
	ctx := context.Background()
	owner := seedUser(t, fx.txManager, "owner@example.com")

	survey, err := fx.service.CreateSurvey(ctx, owner.ID, lunchSurveyInput())
	require.NoError(t, err)

	encodeErr := errors.New("content too long")
	fx.qrService.EXPECT().GenerateSurveyQR(survey.ID).Return(nil, encodeErr)

	_, err = fx.service.SurveyQRCode(ctx, owner.ID, survey.ID)
	assert.ErrorIs(t, err, encodeErr)
}

func TestIsBlankAnswer(t *testing.T) {
	tests := []struct {
		name   string
		answer any
		blank  bool
	}{
		{name: "missing", answer: nil, blank: true},
		{name: "whitespace", answer: " \t", blank: true},
		{name: "empty list", answer: []any{}, blank: true},
		{name: "empty object", answer: map[string]any{}, blank: true},
		{name: "text", answer: "yes", blank: false},
		{name: "zero rating", answer: 0.0, blank: false},
		{name: "false", answer: false, blank: false},
		{name: "choices", answer: []any{"a"}, blank: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.blank, isBlankAnswer(tt.answer))
		})
	}
}
