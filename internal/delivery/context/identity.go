package context

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// KeyUserID holds the id of the user resolved from the bearer token.
const KeyUserID ContextKey = "user_id"

// SetUserID stores the authenticated owner id on the echo context.
func SetUserID(c echo.Context, userID uuid.UUID) {
	c.Set(string(KeyUserID), userID)
}

// GetUserID returns the authenticated owner id. Handlers behind the auth
// middleware always find one; ok is false on public routes.
func GetUserID(c echo.Context) (uuid.UUID, bool) {
	userID, ok := c.Get(string(KeyUserID)).(uuid.UUID)
	if !ok || userID == uuid.Nil {
		return uuid.Nil, false
	}

	return userID, true
}
