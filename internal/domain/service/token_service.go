package service

import (
	"time"

	"cbx/internal/errors"

	"github.com/golang-jwt/jwt/v5"
)

// Verification failures. Callers must not reveal which one occurred.
var (
	ErrTokenExpired          = errors.New("token expired")
	ErrTokenSignatureInvalid = errors.New("token signature invalid")
	ErrTokenMalformed        = errors.New("token malformed")
)

// Claims are the session token claims. Subject is the email or phone used at login.
type Claims struct {
	jwt.RegisteredClaims
}

// TokenService issues and verifies stateless bearer tokens.
type TokenService interface {
	// Issue signs a token for subject valid for the configured TTL.
	Issue(subject string) (token string, expiresAt time.Time, err error)

	// Verify checks signature and expiry and returns the claims.
	Verify(token string) (*Claims, error)

	// TTL returns the configured token lifetime.
	TTL() time.Duration
}
