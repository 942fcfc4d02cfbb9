package redisstore

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/oksasatya/go-auth-engine/internal/domain/entity"
	"github.com/oksasatya/go-auth-engine/internal/domain/port"
	"github.com/oksasatya/go-auth-engine/internal/domain/valueobject"
	"github.com/oksasatya/go-auth-engine/pkg/helpers"
)

func keyTwoFaAttempt(id entity.TwoFaAttemptID) string { return "2fa:attempt:" + string(id) }
func keyTwoFaUser(email string) string                { return "2fa:user:" + email }

// twoFaRecord is the stored JSON shape of a pending attempt.
type twoFaRecord struct {
	AttemptID string    `json:"attempt_id"`
	Email     string    `json:"email"`
	Code      string    `json:"code"`
	Scope     string    `json:"scope"`
	ExpiresAt time.Time `json:"expires_at"`
}

type TwoFaCodeStore struct {
	rdb *redis.Client
}

func NewTwoFaCodeStore(rdb *redis.Client) *TwoFaCodeStore {
	return &TwoFaCodeStore{rdb: rdb}
}

// Put stores the attempt under its id and repoints the per-user index,
// deleting the user's previous attempt first. Two racing logins resolve
// last-write-wins: only the most recently issued code stays verifiable.
func (s *TwoFaCodeStore) Put(ctx context.Context, attempt entity.TwoFaAttempt, ttl time.Duration) error {
	user := attempt.Email.String()
	prev, err := s.rdb.Get(ctx, keyTwoFaUser(user)).Result()
	switch {
	case err == nil:
		if prev != "" {
			if err := helpers.RedisDel(ctx, s.rdb, keyTwoFaAttempt(entity.TwoFaAttemptID(prev))); err != nil {
				return err
			}
		}
	case errors.Is(err, redis.Nil):
		// no prior attempt for this user
	default:
		// A faulty index read must not let two codes coexist for one user.
		return err
	}

	rec := twoFaRecord{
		AttemptID: string(attempt.ID),
		Email:     user,
		Code:      attempt.Code,
		Scope:     string(attempt.Scope),
		ExpiresAt: attempt.ExpiresAt,
	}
	if err := helpers.RedisSetJSON(ctx, s.rdb, keyTwoFaAttempt(attempt.ID), rec, ttl); err != nil {
		return err
	}
	return s.rdb.Set(ctx, keyTwoFaUser(user), string(attempt.ID), ttl).Err()
}

func (s *TwoFaCodeStore) Get(ctx context.Context, id entity.TwoFaAttemptID) (*entity.TwoFaAttempt, error) {
	var rec twoFaRecord
	found, err := helpers.RedisGetJSON(ctx, s.rdb, keyTwoFaAttempt(id), &rec)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, port.ErrNotFound
	}
	email, err := valueobject.NewEmail(rec.Email)
	if err != nil {
		return nil, err
	}
	return &entity.TwoFaAttempt{
		ID:        entity.TwoFaAttemptID(rec.AttemptID),
		Email:     email,
		Code:      rec.Code,
		Scope:     entity.Scope(rec.Scope),
		ExpiresAt: rec.ExpiresAt,
	}, nil
}

// Delete removes the attempt; the per-user index is left to expire on its
// own and is overwritten by the next Put anyway.
func (s *TwoFaCodeStore) Delete(ctx context.Context, id entity.TwoFaAttemptID) error {
	return helpers.RedisDel(ctx, s.rdb, keyTwoFaAttempt(id))
}

var _ port.TwoFaCodeStore = (*TwoFaCodeStore)(nil)
