package auth

import (
	"strings"
	"testing"

	"cbx/config"
	domainerrors "cbx/internal/domain/errors"
	"cbx/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newTestHasher(policy config.PasswordStrengthConfig) *bcryptHasher {
	return NewBcryptHasherWithPolicy(bcrypt.MinCost, policy)
}

func TestBcryptHasher_HashAndCheck(t *testing.T) {
	hasher := newTestHasher(config.PasswordStrengthConfig{MinLength: 6})

	password := "secret1"
	hash, err := hasher.Hash(password)
	require.NoError(t, err)
	assert.NotEqual(t, password, hash)

	assert.True(t, hasher.Check(password, hash))
	assert.False(t, hasher.Check("secret2", hash))
	assert.False(t, hasher.Check("", hash))
	assert.False(t, hasher.Check(password, "invalid_hash"))
}

func TestBcryptHasher_SaltsEveryHash(t *testing.T) {
	hasher := newTestHasher(config.PasswordStrengthConfig{})

	first, err := hasher.Hash("same-password")
	require.NoError(t, err)
	second, err := hasher.Hash("same-password")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestBcryptHasher_UsesConfiguredCost(t *testing.T) {
	cfg := &config.Config{Auth: &config.AuthConfig{BcryptCost: 5}}
	hasher := NewBcryptHasher(cfg)

	hash, err := hasher.Hash("secret1")
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, 5, cost)
}

func TestBcryptHasher_ClampsCost(t *testing.T) {
	assert.Equal(t, bcrypt.MinCost, NewBcryptHasherWithPolicy(1, config.PasswordStrengthConfig{}).cost)
	assert.Equal(t, bcrypt.MaxCost, NewBcryptHasherWithPolicy(99, config.PasswordStrengthConfig{}).cost)
}

func TestBcryptHasher_ValidatePasswordStrength(t *testing.T) {
	hasher := newTestHasher(config.PasswordStrengthConfig{
		MinLength:        8,
		RequireUppercase: true,
		RequireLowercase: true,
		RequireNumbers:   true,
		RequireSpecial:   true,
	})

	for _, password := range []string{"StrongPass123!", "Pässphräse123!", "Complex#Secret9"} {
		assert.NoError(t, hasher.ValidatePasswordStrength(password), password)
	}

	testCases := []struct {
		password string
		expected string
	}{
		{"Ab1!", "must be at least 8 characters long"},
		{"PASSWORD123!", "must contain at least one lowercase letter"},
		{"password123!", "must contain at least one uppercase letter"},
		{"PasswordABC!", "must contain at least one number"},
		{"Password123", "must contain at least one special character"},
	}

	for _, tc := range testCases {
		t.Run(tc.password, func(t *testing.T) {
			err := hasher.ValidatePasswordStrength(tc.password)
			require.Error(t, err)
			assert.True(t, errors.Is(err, domainerrors.ErrPasswordStrength))

			var appErr domainerrors.AppError
			require.True(t, errors.As(err, &appErr))
			details, ok := appErr.Details().(map[string]any)
			require.True(t, ok)
			assert.Contains(t, details["password"], tc.expected)
		})
	}
}

func TestBcryptHasher_RejectsPasswordsBeyondBcryptLimit(t *testing.T) {
	hasher := newTestHasher(config.PasswordStrengthConfig{MinLength: 6, MaxLength: 500})

	assert.NoError(t, hasher.ValidatePasswordStrength(strings.Repeat("a", 72)))
	assert.Error(t, hasher.ValidatePasswordStrength(strings.Repeat("a", 73)))
}

func TestBcryptHasher_PasswordStrengthHelpers(t *testing.T) {
	hasher := &bcryptHasher{}

	assert.True(t, hasher.hasUppercase("Password"))
	assert.False(t, hasher.hasUppercase("password"))

	assert.True(t, hasher.hasLowercase("Password"))
	assert.False(t, hasher.hasLowercase("PASSWORD"))

	assert.True(t, hasher.hasNumbers("Password123"))
	assert.False(t, hasher.hasNumbers("Password"))

	assert.True(t, hasher.hasSpecialChars("Password!"))
	assert.False(t, hasher.hasSpecialChars("Password"))
}
