package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	domainerrors "cbx/internal/domain/errors"
	"cbx/internal/errors"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type errorBody struct {
	Error struct {
		Code    string         `json:"code"`
		Message string         `json:"message"`
		Details map[string]any `json:"details"`
	} `json:"error"`
}

func TestErrorMiddleware_HandleHTTPError(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantCode    string
		wantMessage string
		wantDetails bool
	}{
		{
			name:        "validation keeps details",
			err:         errors.WithStack(domainerrors.ErrValidationFailed.WithDetails(map[string]string{"amount": "amount must not be negative"})),
			wantStatus:  http.StatusBadRequest,
			wantCode:    "VALIDATION_FAILED",
			wantMessage: "Input validation failed",
			wantDetails: true,
		},
		{
			name:        "wrapped not found",
			err:         errors.Wrap(domainerrors.ErrExpenseNotFound, "failed to update expense"),
			wantStatus:  http.StatusNotFound,
			wantCode:    "EXPENSE_NOT_FOUND",
			wantMessage: "Expense not found",
		},
		{
			name:        "unauthorized drops details",
			err:         domainerrors.ErrUnauthorized.WithDetails("token expired"),
			wantStatus:  http.StatusUnauthorized,
			wantCode:    "UNAUTHORIZED",
			wantMessage: "Could not validate credentials",
		},
		{
			name:        "echo error",
			err:         echo.ErrNotFound,
			wantStatus:  http.StatusNotFound,
			wantCode:    "HTTP_ERROR",
			wantMessage: "Not Found",
		},
		{
			name:        "unknown error is opaque",
			err:         errors.New("pq: relation does not exist"),
			wantStatus:  http.StatusInternalServerError,
			wantCode:    "INTERNAL_ERROR",
			wantMessage: "Internal server error, please try again later",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

			NewErrorMiddleware(newDiscardLogger()).HandleHTTPError(tt.err, c)

			assert.Equal(t, tt.wantStatus, rec.Code)

			var body errorBody
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.wantCode, body.Error.Code)
			assert.Equal(t, tt.wantMessage, body.Error.Message)
			assert.Equal(t, tt.wantDetails, body.Error.Details != nil)
			assert.NotContains(t, rec.Body.String(), "pq:")
		})
	}
}

func TestErrorMiddleware_SetsBearerChallenge(t *testing.T) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

	NewErrorMiddleware(newDiscardLogger()).HandleHTTPError(domainerrors.ErrInvalidCredentials, c)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Bearer", rec.Header().Get(echo.HeaderWWWAuthenticate))
}

func TestErrorMiddleware_SkipsCommittedResponse(t *testing.T) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	require.NoError(t, c.String(http.StatusTeapot, "already written"))

	NewErrorMiddleware(newDiscardLogger()).HandleHTTPError(domainerrors.ErrConflict, c)

	assert.Equal(t, http.StatusTeapot, rec.Code)
	assert.Equal(t, "already written", rec.Body.String())
}
