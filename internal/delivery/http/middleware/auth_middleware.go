package middleware

import (
	"log/slog"
	"strings"

	deliverycontext "cbx/internal/delivery/context"
	domainerrors "cbx/internal/domain/errors"
	"cbx/internal/domain/repository"
	"cbx/internal/domain/service"
	"cbx/internal/errors"
	"cbx/internal/usecase"

	"github.com/labstack/echo/v4"
)

const bearerScheme = "Bearer"

// AuthMiddleware authenticates bearer tokens and resolves them to an active user.
type AuthMiddleware struct {
	tokenSvc service.TokenService
	identity usecase.IdentityUsecase
	logger   *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService, identity usecase.IdentityUsecase, logger *slog.Logger) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc, identity: identity, logger: logger}
}

// Authenticate verifies the token, re-resolves its subject on every request and
// stores the owner id for handlers. Every rejection looks the same to the caller.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		logger := deliverycontext.GetLoggerOrDefault(ctx, m.logger)

		token, ok := bearerToken(c.Request().Header.Get(echo.HeaderAuthorization))
		if !ok {
			return errors.Wrap(domainerrors.ErrUnauthorized, "missing bearer token")
		}

		claims, err := m.tokenSvc.Verify(token)
		if err != nil {
			logger.Debug("Bearer token rejected", slog.String("reason", err.Error()))

			return errors.Wrap(domainerrors.ErrUnauthorized, "invalid bearer token")
		}

		user, err := m.identity.Resolve(ctx, claims.Subject)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				logger.Debug("Token subject has no active user")

				return errors.Wrap(domainerrors.ErrUnauthorized, "unknown token subject")
			}

			return errors.Wrap(err, "resolve token subject")
		}

		deliverycontext.SetUserID(c, user.ID)

		reqLogger := logger.With(slog.String("user_id", user.ID.String()))
		c.SetRequest(c.Request().WithContext(deliverycontext.WithLogger(ctx, reqLogger)))

		return next(c)
	}
}

// bearerToken extracts the token of an "Authorization: Bearer <token>" header.
// The scheme is matched case-insensitively.
func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, bearerScheme) {
		return "", false
	}

	token = strings.TrimSpace(token)

	return token, token != ""
}
