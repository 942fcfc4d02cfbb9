package memory

import (
	"context"
	"sync"
	"time"

	"github.com/oksasatya/go-auth-engine/internal/domain/port"
)

type BannedTokenStore struct {
	mu      sync.Mutex
	entries map[string]time.Time // token id -> ban expiry
	now     func() time.Time
}

func NewBannedTokenStore() *BannedTokenStore {
	return &BannedTokenStore{entries: make(map[string]time.Time), now: time.Now}
}

func (s *BannedTokenStore) Ban(_ context.Context, tokenID string, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	expiry := s.now().Add(ttl)
	// Re-banning keeps the later expiry so an entry never ends early.
	if cur, ok := s.entries[tokenID]; !ok || expiry.After(cur) {
		s.entries[tokenID] = expiry
	}
	return nil
}

func (s *BannedTokenStore) IsBanned(_ context.Context, tokenID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	expiry, ok := s.entries[tokenID]
	if !ok {
		return false, nil
	}
	if !s.now().Before(expiry) {
		delete(s.entries, tokenID)
		return false, nil
	}
	return true, nil
}

var _ port.BannedTokenStore = (*BannedTokenStore)(nil)
