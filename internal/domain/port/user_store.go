// Package port defines the contracts the use cases depend on. Concrete
// implementations live under internal/infrastructure; the use-case layer
// never imports them.
package port

import (
	"context"
	"errors"

	"github.com/oksasatya/go-auth-engine/internal/domain/entity"
	"github.com/oksasatya/go-auth-engine/internal/domain/valueobject"
)

var (
	// ErrNotFound is returned when a record does not exist or its TTL has
	// elapsed.
	ErrNotFound = errors.New("record not found")
	// ErrConflict is returned by Create when the email is already taken.
	ErrConflict = errors.New("record already exists")
)

// UserStore persists accounts keyed by email. Create must be atomic with
// respect to email uniqueness: of two concurrent creates for the same
// address exactly one succeeds and the other observes ErrConflict.
type UserStore interface {
	Get(ctx context.Context, email valueobject.Email) (*entity.User, error)
	Create(ctx context.Context, u *entity.User) error
	Update(ctx context.Context, u *entity.User) error
	Delete(ctx context.Context, email valueobject.Email) error
}
