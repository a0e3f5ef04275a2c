// Package impl contains the implementation of the application's business logic.
package impl

import (
	"strings"
	"time"

	domainerrors "cbx/internal/domain/errors"
)

// fieldErrors collects per-field validation messages in the same shape the
// HTTP validator produces.
type fieldErrors map[string]string

func (f fieldErrors) add(field, message string) {
	if _, exists := f[field]; !exists {
		f[field] = message
	}
}

// err returns nil when nothing was collected.
func (f fieldErrors) err() error {
	if len(f) == 0 {
		return nil
	}

	return domainerrors.ErrValidationFailed.WithDetails(map[string]string(f))
}

func validationError(field, message string) error {
	return domainerrors.ErrValidationFailed.WithDetails(map[string]string{field: message})
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// nowUTC is replaced in tests that need fixed dates.
var nowUTC = func() time.Time {
	return time.Now().UTC()
}
