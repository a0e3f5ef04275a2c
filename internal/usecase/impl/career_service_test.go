package impl

import (
	"context"
	"testing"
	"time"

	"cbx/internal/domain/entity"
	domainerrors "cbx/internal/domain/errors"
	"cbx/internal/domain/repository"
	"cbx/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCareerService(t *testing.T) (usecase.CareerUsecase, repository.TransactionManager) {
	t.Helper()

	txManager := newTestTxManager(t)

	return NewCareerService(CareerServiceParams{TxManager: txManager, Logger: newDiscardLogger()}), txManager
}

func TestCareerService_GetProfile_CreatesEmptyProfileOnce(t *testing.T) {
	service, txManager := newTestCareerService(t)
	ctx := context.Background()
	user := seedUser(t, txManager, "owner@example.com")

	first, err := service.GetProfile(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, user.ID, first.UserID)
	assert.NotNil(t, first.Skills)
	assert.Empty(t, first.Skills)

	second, err := service.GetProfile(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
}

func TestCareerService_PutProfile(t *testing.T) {
	service, txManager := newTestCareerService(t)
	ctx := context.Background()
	user := seedUser(t, txManager, "owner@example.com")

	created, err := service.PutProfile(ctx, user.ID, &usecase.CareerProfileInput{
		Headline: " Go developer ",
		Skills:   []string{"Go", " ", "SQL", "Go"},
	})
	require.NoError(t, err)
	assert.Equal(t, "Go developer", created.Headline)
	assert.Equal(t, []string{"Go", "SQL"}, created.Skills)
	assert.Empty(t, created.Experience)

	replaced, err := service.PutProfile(ctx, user.ID, &usecase.CareerProfileInput{
		Headline:   "Staff engineer",
		Experience: []entity.Experience{{Company: "Acme", Role: "Lead"}},
	})
	require.NoError(t, err)
	assert.Equal(t, created.ID, replaced.ID)
	assert.Equal(t, "Staff engineer", replaced.Headline)
	assert.Empty(t, replaced.Skills, "put replaces the whole profile")
	assert.Equal(t, []entity.Experience{{Company: "Acme", Role: "Lead"}}, replaced.Experience)

	_, err = service.PutProfile(ctx, user.ID, &usecase.CareerProfileInput{
		Education: []entity.Education{{Degree: "BSc"}},
	})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestCareerService_CreateApplication_Defaults(t *testing.T) {
	service, txManager := newTestCareerService(t)
	ctx := context.Background()
	user := seedUser(t, txManager, "owner@example.com")

	fixed := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	origNow := nowUTC
	nowUTC = func() time.Time { return fixed }
	t.Cleanup(func() { nowUTC = origNow })

	application, err := service.CreateApplication(ctx, user.ID, &usecase.CreateApplicationInput{
		Company:  " Acme ",
		Position: "Backend",
	})
	require.NoError(t, err)
	assert.Equal(t, "Acme", application.Company)
	assert.Equal(t, entity.ApplicationStatusApplied, application.Status)
	assert.True(t, fixed.Equal(application.AppliedDate))

	list, err := service.ListApplications(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, application.ID, list[0].ID)
}

func TestCareerService_CreateApplication_Validation(t *testing.T) {
	service, txManager := newTestCareerService(t)
	user := seedUser(t, txManager, "owner@example.com")

	_, err := service.CreateApplication(context.Background(), user.ID, &usecase.CreateApplicationInput{
		Company: "Acme",
		Status:  "Ghosted",
	})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestCareerService_UpdateApplication(t *testing.T) {
	service, txManager := newTestCareerService(t)
	ctx := context.Background()
	owner := seedUser(t, txManager, "owner@example.com")
	other := seedUser(t, txManager, "other@example.com")

	application, err := service.CreateApplication(ctx, owner.ID, &usecase.CreateApplicationInput{
		Company:  "Acme",
		Position: "Backend",
		Notes:    "referral",
	})
	require.NoError(t, err)

	updated, err := service.UpdateApplication(ctx, owner.ID, application.ID, &usecase.UpdateApplicationInput{
		Status: strPtr(entity.ApplicationStatusInterviewing),
	})
	require.NoError(t, err)
	assert.Equal(t, entity.ApplicationStatusInterviewing, updated.Status)
	assert.Equal(t, "referral", updated.Notes, "untouched fields survive a partial update")

	_, err = service.UpdateApplication(ctx, owner.ID, application.ID, &usecase.UpdateApplicationInput{
		Status: strPtr("Hired"),
	})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	_, err = service.UpdateApplication(ctx, other.ID, application.ID, &usecase.UpdateApplicationInput{
		Status: strPtr(entity.ApplicationStatusOffer),
	})
	assert.ErrorIs(t, err, domainerrors.ErrApplicationNotFound)

	assert.ErrorIs(t, service.DeleteApplication(ctx, other.ID, application.ID), domainerrors.ErrApplicationNotFound)
	require.NoError(t, service.DeleteApplication(ctx, owner.ID, application.ID))

	list, err := service.ListApplications(ctx, owner.ID)
	require.NoError(t, err)
	assert.Empty(t, list)
}
