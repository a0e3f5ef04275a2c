package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"cbx/internal/delivery/http/response"
	"cbx/internal/domain/entity"
	domainerrors "cbx/internal/domain/errors"
	"cbx/internal/errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// Layouts accepted for dates in request bodies, tried in order.
var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// Date decodes RFC 3339 timestamps, naive timestamps and plain dates. Naive values are read as UTC.
type Date struct {
	time.Time
}

func (d *Date) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		d.Time = time.Time{}

		return nil
	}

	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return errors.Wrap(err, "date must be a string")
	}

	parsed, err := parseDate(raw)
	if err != nil {
		return err
	}
	d.Time = parsed

	return nil
}

// UnmarshalParam lets echo bind dates from query and form values.
func (d *Date) UnmarshalParam(param string) error {
	parsed, err := parseDate(param)
	if err != nil {
		return err
	}
	d.Time = parsed

	return nil
}

func parseDate(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, nil
	}

	for _, layout := range dateLayouts {
		if parsed, err := time.Parse(layout, raw); err == nil {
			return parsed.UTC(), nil
		}
	}

	return time.Time{}, errors.Errorf("invalid date %q", raw)
}

// Money renders as a bare JSON number with two decimals.
type Money decimal.Decimal

func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(decimal.Decimal(m).StringFixed(2)), nil
}

// UserResponse is the public view of a user. The password hash never leaves the server.
type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	Email     *string   `json:"email"`
	Phone     *string   `json:"phone"`
	FullName  string    `json:"full_name"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

func newUserResponse(user *entity.User) *UserResponse {
	return &UserResponse{
		ID:        user.ID,
		Email:     optional(user.Email),
		Phone:     optional(user.Phone),
		FullName:  user.FullName,
		IsActive:  user.IsActive,
		CreatedAt: user.CreatedAt,
	}
}

func optional(s string) *string {
	if s == "" {
		return nil
	}

	return &s
}

// pathID parses the uuid path parameter name. An id that cannot exist is reported as notFound.
func pathID(c echo.Context, name string, notFound error) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, errors.Wrapf(notFound, "invalid %s %q", name, c.Param(name))
	}

	return id, nil
}

// invalidInput is the bind failure returned from helpers, rendered by the error handler.
func invalidInput(message string) error {
	return domainerrors.NewBaseError(http.StatusBadRequest, "INVALID_INPUT", message)
}

func deleted(c echo.Context, what string) error {
	return response.Success(c, http.StatusOK, map[string]string{"message": what + " deleted successfully"})
}
