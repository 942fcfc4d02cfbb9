// Package valueobject holds the validated input types the use cases operate
// on. Raw strings from the outside world are parsed into these at the
// boundary and are immutable afterwards.
package valueobject

import (
	"net/mail"
	"strings"

	"github.com/oksasatya/go-auth-engine/internal/domain/autherr"
)

// Email is a normalized, syntactically valid address. It doubles as the
// user's unique identity, so comparison is case-insensitive.
type Email struct {
	value string
}

// NewEmail parses and normalizes a raw address.
func NewEmail(raw string) (Email, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return Email{}, autherr.Validation("email is required")
	}
	addr, err := mail.ParseAddress(trimmed)
	if err != nil || addr.Address != trimmed {
		return Email{}, autherr.Validation("email is not a valid address")
	}
	return Email{value: strings.ToLower(trimmed)}, nil
}

func (e Email) String() string { return e.value }

// IsZero reports whether the email was never constructed via NewEmail.
func (e Email) IsZero() bool { return e.value == "" }

// Equals compares two addresses; normalization makes this case-insensitive.
func (e Email) Equals(other Email) bool { return e.value == other.value }
