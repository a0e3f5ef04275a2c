package auth

import (
	"testing"
	"time"

	"cbx/config"
	"cbx/internal/domain/service"
	"cbx/internal/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test_access_secret_key_very_long_for_testing"

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func newTestJWTService(t *testing.T, clock *fakeClock) service.TokenService {
	t.Helper()

	svc, err := NewJWTServiceWithSecret(testSecret, 30*time.Minute, WithClock(clock.Now))
	require.NoError(t, err)

	return svc
}

func TestJWTService_IssueAndVerify(t *testing.T) {
	clock := &fakeClock{now: time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)}
	svc := newTestJWTService(t, clock)

	token, expiresAt, err := svc.Issue("alice@example.com")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, clock.now.Add(30*time.Minute), expiresAt)

	claims, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", claims.Subject)
	assert.Equal(t, expiresAt.Unix(), claims.ExpiresAt.Unix())
	assert.NotEmpty(t, claims.ID)
}

func TestJWTService_ExpiryBoundary(t *testing.T) {
	issued := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	clock := &fakeClock{now: issued}
	svc := newTestJWTService(t, clock)

	token, _, err := svc.Issue("alice@example.com")
	require.NoError(t, err)

	clock.now = issued.Add(30*time.Minute - time.Second)
	_, err = svc.Verify(token)
	assert.NoError(t, err)

	clock.now = issued.Add(30 * time.Minute)
	_, err = svc.Verify(token)
	assert.True(t, errors.Is(err, service.ErrTokenExpired))
}

func TestJWTService_RejectsForeignSignature(t *testing.T) {
	clock := &fakeClock{now: time.Now()}
	svc := newTestJWTService(t, clock)

	other, err := NewJWTServiceWithSecret("another_secret_key_of_reasonable_length", time.Minute)
	require.NoError(t, err)
	token, _, err := other.Issue("alice@example.com")
	require.NoError(t, err)

	_, err = svc.Verify(token)
	assert.True(t, errors.Is(err, service.ErrTokenSignatureInvalid))
}

func TestJWTService_RejectsOtherAlgorithms(t *testing.T) {
	svc := newTestJWTService(t, &fakeClock{now: time.Now()})

	claims := jwt.RegisteredClaims{
		Subject:   "alice@example.com",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)

	_, err = svc.Verify(token)
	assert.Error(t, err)
}

func TestJWTService_RejectsMissingSubject(t *testing.T) {
	svc := newTestJWTService(t, &fakeClock{now: time.Now()})

	claims := jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour))}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)

	_, err = svc.Verify(token)
	assert.True(t, errors.Is(err, service.ErrTokenMalformed))
}

func TestJWTService_InvalidToken(t *testing.T) {
	svc := newTestJWTService(t, &fakeClock{now: time.Now()})

	claims, err := svc.Verify("clearly-not-a-jwt-token-format")
	assert.Nil(t, claims)
	assert.True(t, errors.Is(err, service.ErrTokenMalformed))
}

func TestNewJWTService_FromConfig(t *testing.T) {
	cfg := &config.Config{Auth: &config.AuthConfig{AccessTokenTTL: 15 * time.Minute}}
	cfg.SecretKey.Access = testSecret

	svc, err := NewJWTService(cfg)
	require.NoError(t, err)
	assert.Equal(t, 15*time.Minute, svc.TTL())
}

func TestNewJWTService_EmptySecret(t *testing.T) {
	cfg := &config.Config{Auth: &config.AuthConfig{AccessTokenTTL: time.Minute}}

	svc, err := NewJWTService(cfg)
	assert.Nil(t, svc)
	assert.ErrorContains(t, err, "jwt secret must be provided")
}
