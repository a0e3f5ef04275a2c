// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"
	"time"

	deliverycontext "cbx/internal/delivery/context"
	"cbx/internal/delivery/http/response"
	domainerrors "cbx/internal/domain/errors"
	"cbx/internal/errors"
	"cbx/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AuthHandlerParams holds dependencies for AuthHandler, injected by Fx.
type AuthHandlerParams struct {
	fx.In

	AuthUC usecase.AuthUsecase
	Logger *slog.Logger
}

// AuthHandler serves registration, login and the caller's own profile.
type AuthHandler struct {
	authUC usecase.AuthUsecase
	logger *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler.
func NewAuthHandler(params AuthHandlerParams) *AuthHandler {
	return &AuthHandler{
		authUC: params.AuthUC,
		logger: params.Logger,
	}
}

// RegisterRequest is the body of POST /auth/register.
type RegisterRequest struct {
	Email    string `json:"email" validate:"omitempty,email,max=255"`
	Phone    string `json:"phone" validate:"omitempty,phone"`
	FullName string `json:"full_name" validate:"max=255"`
	Password string `json:"password" validate:"required"`
}

// LoginRequest accepts the OAuth2 password form as well as JSON.
type LoginRequest struct {
	Username string `form:"username" json:"username"`
	Password string `form:"password" json:"password"`
}

// LoginResponse carries the bearer token.
type LoginResponse struct {
	AccessToken string    `json:"access_token"`
	TokenType   string    `json:"token_type"`
	ExpiresAt   time.Time `json:"expires_at"`
}

// UpdateMeRequest is a partial profile update. An empty string clears email or phone.
type UpdateMeRequest struct {
	FullName *string `json:"full_name" validate:"omitempty,max=255"`
	Email    *string `json:"email" validate:"omitzero,email,max=255"`
	Phone    *string `json:"phone" validate:"omitzero,phone"`
}

// Register creates a user and returns its public view.
func (h *AuthHandler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	user, err := h.authUC.Register(c.Request().Context(), &usecase.RegisterInput{
		Email:    req.Email,
		Phone:    req.Phone,
		FullName: req.FullName,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newUserResponse(user))
}

// Login exchanges an email or phone plus password for a bearer token.
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}

	output, err := h.authUC.Login(c.Request().Context(), &usecase.LoginInput{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, &LoginResponse{
		AccessToken: output.AccessToken,
		TokenType:   output.TokenType,
		ExpiresAt:   output.ExpiresAt,
	})
}

// Me returns the authenticated user.
func (h *AuthHandler) Me(c echo.Context) error {
	userID, err := ownerID(c)
	if err != nil {
		return err
	}

	user, err := h.authUC.Me(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newUserResponse(user))
}

// UpdateMe applies a partial update to the authenticated user.
func (h *AuthHandler) UpdateMe(c echo.Context) error {
	userID, err := ownerID(c)
	if err != nil {
		return err
	}

	var req UpdateMeRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid profile input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	user, err := h.authUC.UpdateMe(c.Request().Context(), userID, &usecase.UpdateProfileInput{
		FullName: req.FullName,
		Email:    req.Email,
		Phone:    req.Phone,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newUserResponse(user))
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"})
}

// ownerID returns the user resolved by the auth middleware.
func ownerID(c echo.Context) (uuid.UUID, error) {
	userID, ok := deliverycontext.GetUserID(c)
	if !ok {
		return uuid.Nil, errors.Wrap(domainerrors.ErrUnauthorized, "no authenticated user")
	}

	return userID, nil
}
