package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "cbx/internal/delivery/context"
	"cbx/internal/domain/entity"
	domainerrors "cbx/internal/domain/errors"
	"cbx/internal/domain/repository"
	"cbx/internal/domain/service"
	"cbx/internal/errors"
	mockservice "cbx/internal/mocks/service"
	mockusecase "cbx/internal/mocks/usecase"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newAuthContext(authorization string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
	if authorization != "" {
		req.Header.Set(echo.HeaderAuthorization, authorization)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestAuthMiddleware_Authenticate(t *testing.T) {
	userID := uuid.New()
	claims := &service.Claims{RegisteredClaims: jwt.RegisteredClaims{Subject: "alice@example.com"}}

	tests := []struct {
		name          string
		authorization string
		setupMocks    func(tokenSvc *mockservice.MockTokenService, identity *mockusecase.MockIdentityUsecase)
		wantUnauth    bool
		wantErr       bool
	}{
		{
			name:          "valid token",
			authorization: "Bearer good-token",
			setupMocks: func(tokenSvc *mockservice.MockTokenService, identity *mockusecase.MockIdentityUsecase) {
				tokenSvc.EXPECT().Verify("good-token").Return(claims, nil)
				identity.EXPECT().Resolve(mock.Anything, "alice@example.com").Return(&entity.User{ID: userID, IsActive: true}, nil)
			},
		},
		{
			name:          "scheme is case insensitive",
			authorization: "bearer good-token",
			setupMocks: func(tokenSvc *mockservice.MockTokenService, identity *mockusecase.MockIdentityUsecase) {
				tokenSvc.EXPECT().Verify("good-token").Return(claims, nil)
				identity.EXPECT().Resolve(mock.Anything, "alice@example.com").Return(&entity.User{ID: userID, IsActive: true}, nil)
			},
		},
		{
			name:       "missing header",
			setupMocks: func(*mockservice.MockTokenService, *mockusecase.MockIdentityUsecase) {},
			wantUnauth: true,
		},
		{
			name:          "wrong scheme",
			authorization: "Basic abc",
			setupMocks:    func(*mockservice.MockTokenService, *mockusecase.MockIdentityUsecase) {},
			wantUnauth:    true,
		},
		{
			name:          "expired token",
			authorization: "Bearer old-token",
			setupMocks: func(tokenSvc *mockservice.MockTokenService, _ *mockusecase.MockIdentityUsecase) {
				tokenSvc.EXPECT().Verify("old-token").Return(nil, service.ErrTokenExpired)
			},
			wantUnauth: true,
		},
		{
			name:          "subject no longer active",
			authorization: "Bearer good-token",
			setupMocks: func(tokenSvc *mockservice.MockTokenService, identity *mockusecase.MockIdentityUsecase) {
				tokenSvc.EXPECT().Verify("good-token").Return(claims, nil)
				identity.EXPECT().Resolve(mock.Anything, "alice@example.com").Return(nil, errors.Wrap(repository.ErrUserNotFound, "resolve"))
			},
			wantUnauth: true,
		},
		{
			name:          "store failure is not an auth failure",
			authorization: "Bearer good-token",
			setupMocks: func(tokenSvc *mockservice.MockTokenService, identity *mockusecase.MockIdentityUsecase) {
				tokenSvc.EXPECT().Verify("good-token").Return(claims, nil)
				identity.EXPECT().Resolve(mock.Anything, "alice@example.com").Return(nil, errors.New("connection reset"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokenSvc := mockservice.NewMockTokenService(t)
			identity := mockusecase.NewMockIdentityUsecase(t)
			tt.setupMocks(tokenSvc, identity)

			m := NewAuthMiddleware(tokenSvc, identity, newDiscardLogger())
			c, _ := newAuthContext(tt.authorization)

			var seen uuid.UUID
			err := m.Authenticate(func(c echo.Context) error {
				seen, _ = deliverycontext.GetUserID(c)

				return nil
			})(c)

			switch {
			case tt.wantUnauth:
				require.Error(t, err)
				assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
				assert.Equal(t, uuid.Nil, seen)
			case tt.wantErr:
				require.Error(t, err)
				assert.NotErrorIs(t, err, domainerrors.ErrUnauthorized)
			default:
				require.NoError(t, err)
				assert.Equal(t, userID, seen)
			}
		})
	}
}
