package entity

import (
	"crypto/rand"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/oksasatya/go-auth-engine/internal/domain/valueobject"
)

// TwoFaAttemptID is the opaque handle returned to callers instead of the
// email, so a pending challenge never confirms that an account exists.
type TwoFaAttemptID string

// NewTwoFaAttemptID returns a fresh unguessable attempt id.
func NewTwoFaAttemptID() TwoFaAttemptID {
	return TwoFaAttemptID(uuid.NewString())
}

func (id TwoFaAttemptID) String() string { return string(id) }

// TwoFaAttempt is the stored side of a pending 2FA challenge. Scope records
// which privilege the attempt was issued for (login vs elevation), so
// verification cannot be talked into minting a higher scope than the flow
// that created it.
type TwoFaAttempt struct {
	ID        TwoFaAttemptID
	Email     valueobject.Email
	Code      string
	Scope     Scope
	ExpiresAt time.Time
}

// Expired reports whether the attempt's TTL has elapsed.
func (a TwoFaAttempt) Expired(now time.Time) bool {
	return !now.Before(a.ExpiresAt)
}

// NewTwoFaCode generates a secure random 6-digit code, zero padded.
func NewTwoFaCode() (string, error) {
	b := make([]byte, 4)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	n := uint32(b[0])<<24 | uint32(b[1])<<16 | uint32(b[2])<<8 | uint32(b[3])
	return fmt.Sprintf("%06d", n%1000000), nil
}
