package port

import (
	"context"
	"time"

	"github.com/oksasatya/go-auth-engine/internal/domain/entity"
)

// TwoFaCodeStore keeps pending 2FA attempts for their TTL. Put replaces any
// prior attempt for the same user (last write wins, so at most one code per
// user is ever verifiable). Get returns ErrNotFound once the TTL elapses,
// whether or not the record was explicitly deleted.
type TwoFaCodeStore interface {
	Put(ctx context.Context, attempt entity.TwoFaAttempt, ttl time.Duration) error
	Get(ctx context.Context, id entity.TwoFaAttemptID) (*entity.TwoFaAttempt, error)
	Delete(ctx context.Context, id entity.TwoFaAttemptID) error
}
