// Package redisstore implements the revocation-list and 2FA-code ports on
// Redis. TTL handling is native: entries vanish on their own once the token
// or code they shadow would have expired anyway.
package redisstore

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/oksasatya/go-auth-engine/internal/domain/port"
)

func keyBannedToken(id string) string { return "token:banned:" + id }

type BannedTokenStore struct {
	rdb *redis.Client
}

func NewBannedTokenStore(rdb *redis.Client) *BannedTokenStore {
	return &BannedTokenStore{rdb: rdb}
}

// Ban writes the entry before returning; after Ban succeeds any IsBanned
// call observes it. Re-banning overwrites the entry, which is a no-op in
// effect since the TTL always equals the token's remaining validity.
func (s *BannedTokenStore) Ban(ctx context.Context, tokenID string, ttl time.Duration) error {
	return s.rdb.Set(ctx, keyBannedToken(tokenID), "1", ttl).Err()
}

func (s *BannedTokenStore) IsBanned(ctx context.Context, tokenID string) (bool, error) {
	n, err := s.rdb.Exists(ctx, keyBannedToken(tokenID)).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

var _ port.BannedTokenStore = (*BannedTokenStore)(nil)
