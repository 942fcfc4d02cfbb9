package entity

import (
	"time"

	"github.com/oksasatya/go-auth-engine/internal/domain/valueobject"
)

// User is the aggregate root for the authentication domain.
// PasswordHash is an opaque algorithm+salt+digest string (bcrypt encodes the
// per-record salt into it); it never equals the plaintext.
type User struct {
	Email         valueobject.Email
	PasswordHash  string
	RequiresTwoFa bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// ValidatedUser is the ephemeral result of a successful credential check,
// produced only after a constant-time hash match and consumed immediately by
// the login and elevate flows.
type ValidatedUser struct {
	Email         valueobject.Email
	RequiresTwoFa bool
}
