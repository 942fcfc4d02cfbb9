package memory

import (
	"context"
	"sync"
	"time"

	"github.com/oksasatya/go-auth-engine/internal/domain/entity"
	"github.com/oksasatya/go-auth-engine/internal/domain/port"
)

type TwoFaCodeStore struct {
	mu       sync.Mutex
	attempts map[entity.TwoFaAttemptID]entity.TwoFaAttempt
	byUser   map[string]entity.TwoFaAttemptID // email -> current attempt
	now      func() time.Time
}

func NewTwoFaCodeStore() *TwoFaCodeStore {
	return &TwoFaCodeStore{
		attempts: make(map[entity.TwoFaAttemptID]entity.TwoFaAttempt),
		byUser:   make(map[string]entity.TwoFaAttemptID),
		now:      time.Now,
	}
}

// Put registers the attempt and drops any prior one for the same user, so at
// most one code per user is verifiable at any time (last write wins).
func (s *TwoFaCodeStore) Put(_ context.Context, attempt entity.TwoFaAttempt, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	user := attempt.Email.String()
	if prev, ok := s.byUser[user]; ok {
		delete(s.attempts, prev)
	}
	if attempt.ExpiresAt.IsZero() {
		attempt.ExpiresAt = s.now().Add(ttl)
	}
	s.attempts[attempt.ID] = attempt
	s.byUser[user] = attempt.ID
	return nil
}

// Get purges lazily: an attempt past its TTL reads as absent, matching the
// Redis implementation's native expiry.
func (s *TwoFaCodeStore) Get(_ context.Context, id entity.TwoFaAttemptID) (*entity.TwoFaAttempt, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	attempt, ok := s.attempts[id]
	if !ok {
		return nil, port.ErrNotFound
	}
	if attempt.Expired(s.now()) {
		s.remove(attempt)
		return nil, port.ErrNotFound
	}
	return &attempt, nil
}

func (s *TwoFaCodeStore) Delete(_ context.Context, id entity.TwoFaAttemptID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if attempt, ok := s.attempts[id]; ok {
		s.remove(attempt)
	}
	return nil
}

func (s *TwoFaCodeStore) remove(attempt entity.TwoFaAttempt) {
	delete(s.attempts, attempt.ID)
	if s.byUser[attempt.Email.String()] == attempt.ID {
		delete(s.byUser, attempt.Email.String())
	}
}

var _ port.TwoFaCodeStore = (*TwoFaCodeStore)(nil)
