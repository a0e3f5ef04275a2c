// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

// PasswordHasher turns login passwords into one-way digests and checks them.
// Digests are the only form in which passwords are stored.
type PasswordHasher interface {
	Hash(password string) (string, error)

	// Check reports whether password matches digest. Malformed digests never match.
	Check(password, digest string) bool

	// ValidatePasswordStrength rejects passwords outside the configured policy.
	ValidatePasswordStrength(password string) error
}
