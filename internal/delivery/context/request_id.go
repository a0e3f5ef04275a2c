// Package context carries request-scoped values between the HTTP layer and the use cases.
package context

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// ContextKey keys values stored on echo and request contexts.
type ContextKey string

const (
	KeyRequestID ContextKey = "request_id"
	keyLogger    ContextKey = "logger"

	// HeaderXRequestID is read from clients and echoed on every response.
	HeaderXRequestID = "X-Request-Id"

	maxRequestIDLength = 64
)

// SetRequestID records the id on the echo context for the response envelope.
func SetRequestID(c echo.Context, requestID string) {
	c.Set(string(KeyRequestID), requestID)
}

// GetRequestID falls back to a fresh id for responses written before the middleware ran.
func GetRequestID(c echo.Context) string {
	if id, _ := c.Get(string(KeyRequestID)).(string); id != "" {
		return id
	}

	return uuid.New().String()
}

// ValidRequestID accepts 1-64 bytes of printable ASCII without spaces.
func ValidRequestID(requestID string) bool {
	if requestID == "" || len(requestID) > maxRequestIDLength {
		return false
	}

	for i := 0; i < len(requestID); i++ {
		if requestID[i] <= ' ' || requestID[i] > '~' {
			return false
		}
	}

	return true
}

// WithLogger attaches the request-scoped logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, keyLogger, logger)
}

// GetLoggerOrDefault returns the request-scoped logger, or fallback outside a request.
func GetLoggerOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if ctx == nil {
		return fallback
	}
	if logger, ok := ctx.Value(keyLogger).(*slog.Logger); ok && logger != nil {
		return logger
	}

	return fallback
}
