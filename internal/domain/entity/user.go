// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

// User is the identity record. Its ID is the only foreign-key anchor for owned resources.
type User struct {
	ID           uuid.UUID // Stable, immutable surrogate id.
	Email        string    // Optional login identifier, unique when set.
	Phone        string    // Optional login identifier, unique when set.
	PasswordHash string    // bcrypt digest. Never serialized, never logged.
	FullName     string    // Display name.
	IsActive     bool      // Inactive users cannot authenticate.
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// LoginIdentity returns the identifier shown back to the user: email when present, else phone.
func (u *User) LoginIdentity() string {
	if u.Email != "" {
		return u.Email
	}

	return u.Phone
}

// phonePattern is digits with an optional leading +. It can never contain '@',
// so a phone never collides with an email identifier.
var phonePattern = regexp.MustCompile(`^\+?[0-9]{4,20}$`)

// IsValidPhone reports whether s is an acceptable phone identifier.
func IsValidPhone(s string) bool {
	return phonePattern.MatchString(s)
}

// IsEmailIdentifier reports whether a login identifier names the email column.
func IsEmailIdentifier(s string) bool {
	return strings.Contains(s, "@")
}
