package port

import (
	"context"
	"time"
)

// BannedTokenStore is the revocation list. Ban must be idempotent and
// durable before it returns: a verify call issued after Ban returns must
// observe the entry. Entries expire naturally once the token they shadow
// would have expired anyway.
type BannedTokenStore interface {
	Ban(ctx context.Context, tokenID string, ttl time.Duration) error
	IsBanned(ctx context.Context, tokenID string) (bool, error)
}
