// Package autherr defines the error taxonomy shared by all use cases.
// Callers match with errors.Is; front ends map each sentinel to a status.
package autherr

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation covers malformed email or password input.
	ErrValidation = errors.New("validation failed")
	// ErrAuthentication covers credential mismatch, invalid/expired/revoked
	// tokens and wrong 2FA codes. Unknown user and wrong password both map
	// here so the two cases cannot be told apart.
	ErrAuthentication = errors.New("authentication failed")
	// ErrConflict is returned when a signup collides with an existing email.
	ErrConflict = errors.New("email already registered")
	// ErrNotFound is returned when a 2FA attempt or user record is gone.
	ErrNotFound = errors.New("not found")
	// ErrExpired is returned when a record exists but its TTL has elapsed.
	ErrExpired = errors.New("expired")
	// ErrPermission is returned for a valid token with insufficient scope.
	ErrPermission = errors.New("insufficient scope")
	// ErrInfrastructure wraps failures from stores or email delivery.
	ErrInfrastructure = errors.New("infrastructure failure")
)

// Infra wraps a port failure so callers can match autherr.ErrInfrastructure
// while keeping the underlying cause in the chain.
func Infra(err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInfrastructure, err)
}

// Validation wraps a field-level cause under ErrValidation.
func Validation(cause string) error {
	return fmt.Errorf("%w: %s", ErrValidation, cause)
}
