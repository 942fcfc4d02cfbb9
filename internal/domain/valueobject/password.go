package valueobject

import (
	"unicode"

	"github.com/oksasatya/go-auth-engine/internal/domain/autherr"
)

// MinPasswordLength is the floor enforced here and, through the strongpwd
// binding rule, at the HTTP edge.
const MinPasswordLength = 8

// Password is a validated plaintext password. It exists only in memory
// between input parsing and hashing; it is never persisted or logged.
type Password struct {
	value string
}

// NewPassword validates complexity: minimum length plus at least one upper,
// one lower, one digit and one special character.
func NewPassword(raw string) (Password, error) {
	if len(raw) < MinPasswordLength {
		return Password{}, autherr.Validation("password must be at least 8 characters")
	}
	var upper, lower, digit, special bool
	for _, r := range raw {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsDigit(r):
			digit = true
		default:
			special = true
		}
	}
	if !upper || !lower || !digit || !special {
		return Password{}, autherr.Validation("password must mix upper, lower, digit and special characters")
	}
	return Password{value: raw}, nil
}

// Expose returns the plaintext for hashing or comparison. Callers must not
// retain the returned string.
func (p Password) Expose() string { return p.value }

// String masks the value so accidental formatting never leaks it.
func (p Password) String() string { return "********" }
