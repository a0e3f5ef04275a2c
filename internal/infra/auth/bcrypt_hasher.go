// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"fmt"
	"unicode"
	"unicode/utf8"

	"golang.org/x/crypto/bcrypt"

	"cbx/config"
	domainerrors "cbx/internal/domain/errors"
	"cbx/internal/domain/service"
	"cbx/internal/errors"
)

// bcrypt rejects inputs longer than this many bytes.
const bcryptMaxPasswordBytes = 72

// bcryptHasher is a concrete implementation of the PasswordHasher interface using bcrypt.
type bcryptHasher struct {
	cost   int
	policy config.PasswordStrengthConfig
}

// NewBcryptHasher builds the hasher from the auth and passwordStrength config sections.
func NewBcryptHasher(cfg *config.Config) service.PasswordHasher {
	cost := bcrypt.DefaultCost
	if cfg.Auth != nil && cfg.Auth.BcryptCost != 0 {
		cost = cfg.Auth.BcryptCost
	}

	var policy config.PasswordStrengthConfig
	if cfg.PasswordStrength != nil {
		policy = *cfg.PasswordStrength
	}

	return NewBcryptHasherWithPolicy(cost, policy)
}

// NewBcryptHasherWithPolicy clamps cost into bcrypt's accepted range.
func NewBcryptHasherWithPolicy(cost int, policy config.PasswordStrengthConfig) *bcryptHasher {
	if cost < bcrypt.MinCost {
		cost = bcrypt.MinCost
	}
	if cost > bcrypt.MaxCost {
		cost = bcrypt.MaxCost
	}
	if policy.MaxLength <= 0 || policy.MaxLength > bcryptMaxPasswordBytes {
		policy.MaxLength = bcryptMaxPasswordBytes
	}

	return &bcryptHasher{cost: cost, policy: policy}
}

// Hash generates a salted hash from a plaintext password using bcrypt.
func (h *bcryptHasher) Hash(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", errors.Wrap(err, "bcrypt.GenerateFromPassword")
	}

	return string(bytes), nil
}

// Check compares a plaintext password with a bcrypt hash.
func (h *bcryptHasher) Check(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// ValidatePasswordStrength returns ErrPasswordStrength carrying every violated rule as details.
func (h *bcryptHasher) ValidatePasswordStrength(password string) error {
	var violations []string

	if utf8.RuneCountInString(password) < h.policy.MinLength {
		violations = append(violations, fmt.Sprintf("must be at least %d characters long", h.policy.MinLength))
	}
	if len(password) > h.policy.MaxLength {
		violations = append(violations, fmt.Sprintf("must be at most %d bytes long", h.policy.MaxLength))
	}
	if h.policy.RequireUppercase && !h.hasUppercase(password) {
		violations = append(violations, "must contain at least one uppercase letter")
	}
	if h.policy.RequireLowercase && !h.hasLowercase(password) {
		violations = append(violations, "must contain at least one lowercase letter")
	}
	if h.policy.RequireNumbers && !h.hasNumbers(password) {
		violations = append(violations, "must contain at least one number")
	}
	if h.policy.RequireSpecial && !h.hasSpecialChars(password) {
		violations = append(violations, "must contain at least one special character")
	}

	if len(violations) > 0 {
		return domainerrors.ErrPasswordStrength.WithDetails(map[string]any{"password": violations})
	}

	return nil
}

func (h *bcryptHasher) hasUppercase(s string) bool {
	return containsRune(s, unicode.IsUpper)
}

func (h *bcryptHasher) hasLowercase(s string) bool {
	return containsRune(s, unicode.IsLower)
}

func (h *bcryptHasher) hasNumbers(s string) bool {
	return containsRune(s, unicode.IsDigit)
}

func (h *bcryptHasher) hasSpecialChars(s string) bool {
	return containsRune(s, func(r rune) bool {
		return unicode.IsPunct(r) || unicode.IsSymbol(r)
	})
}

func containsRune(s string, pred func(rune) bool) bool {
	for _, r := range s {
		if pred(r) {
			return true
		}
	}

	return false
}
