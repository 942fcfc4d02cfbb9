package redisstore

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/go-auth-engine/internal/domain/entity"
	"github.com/oksasatya/go-auth-engine/internal/domain/port"
	"github.com/oksasatya/go-auth-engine/internal/domain/valueobject"
)

func newTestStore(t *testing.T) (*TwoFaCodeStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return NewTwoFaCodeStore(rdb), mr
}

func redisAttempt(t *testing.T, raw string) entity.TwoFaAttempt {
	t.Helper()
	email, err := valueobject.NewEmail(raw)
	require.NoError(t, err)
	code, err := entity.NewTwoFaCode()
	require.NoError(t, err)
	return entity.TwoFaAttempt{
		ID:        entity.NewTwoFaAttemptID(),
		Email:     email,
		Code:      code,
		Scope:     entity.ScopeStandard,
		ExpiresAt: time.Now().Add(10 * time.Minute),
	}
}

func TestRedisTwoFaPutGetDelete(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	attempt := redisAttempt(t, "user@example.com")
	require.NoError(t, s.Put(ctx, attempt, time.Minute))

	got, err := s.Get(ctx, attempt.ID)
	require.NoError(t, err)
	assert.Equal(t, attempt.Code, got.Code)
	assert.Equal(t, attempt.Scope, got.Scope)
	assert.Equal(t, attempt.Email.String(), got.Email.String())

	require.NoError(t, s.Delete(ctx, attempt.ID))
	_, err = s.Get(ctx, attempt.ID)
	assert.ErrorIs(t, err, port.ErrNotFound)
}

func TestRedisTwoFaLastWriteWins(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	first := redisAttempt(t, "user@example.com")
	second := redisAttempt(t, "user@example.com")
	require.NoError(t, s.Put(ctx, first, time.Minute))
	require.NoError(t, s.Put(ctx, second, time.Minute))

	_, err := s.Get(ctx, first.ID)
	assert.ErrorIs(t, err, port.ErrNotFound)

	got, err := s.Get(ctx, second.ID)
	require.NoError(t, err)
	assert.Equal(t, second.Code, got.Code)
}

func TestRedisTwoFaExpires(t *testing.T) {
	s, mr := newTestStore(t)
	ctx := context.Background()

	attempt := redisAttempt(t, "user@example.com")
	require.NoError(t, s.Put(ctx, attempt, time.Minute))

	mr.FastForward(2 * time.Minute)
	_, err := s.Get(ctx, attempt.ID)
	assert.ErrorIs(t, err, port.ErrNotFound)
}

func TestRedisTwoFaPutStopsOnIndexFault(t *testing.T) {
	s, mr := newTestStore(t)
	ctx := context.Background()

	first := redisAttempt(t, "user@example.com")
	require.NoError(t, s.Put(ctx, first, time.Minute))

	// Corrupt the per-user index so reading it errors outright.
	mr.Del(keyTwoFaUser("user@example.com"))
	_, err := mr.Lpush(keyTwoFaUser("user@example.com"), "junk")
	require.NoError(t, err)

	second := redisAttempt(t, "user@example.com")
	require.Error(t, s.Put(ctx, second, time.Minute))

	// The failed Put stored nothing, so the user never holds two live codes.
	_, err = s.Get(ctx, second.ID)
	assert.ErrorIs(t, err, port.ErrNotFound)
	got, err := s.Get(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, first.Code, got.Code)
}
