package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/go-auth-engine/internal/domain/entity"
	"github.com/oksasatya/go-auth-engine/internal/domain/port"
	"github.com/oksasatya/go-auth-engine/internal/domain/valueobject"
)

func mustEmail(t *testing.T, raw string) valueobject.Email {
	t.Helper()
	e, err := valueobject.NewEmail(raw)
	require.NoError(t, err)
	return e
}

func TestUserStoreCRUD(t *testing.T) {
	s := NewUserStore()
	ctx := context.Background()
	email := mustEmail(t, "user@example.com")

	_, err := s.Get(ctx, email)
	assert.ErrorIs(t, err, port.ErrNotFound)

	u := &entity.User{Email: email, PasswordHash: "hash-a"}
	require.NoError(t, s.Create(ctx, u))
	assert.ErrorIs(t, s.Create(ctx, u), port.ErrConflict)

	got, err := s.Get(ctx, email)
	require.NoError(t, err)
	assert.Equal(t, "hash-a", got.PasswordHash)

	got.PasswordHash = "hash-b"
	require.NoError(t, s.Update(ctx, got))
	again, err := s.Get(ctx, email)
	require.NoError(t, err)
	assert.Equal(t, "hash-b", again.PasswordHash)

	require.NoError(t, s.Delete(ctx, email))
	assert.ErrorIs(t, s.Delete(ctx, email), port.ErrNotFound)
	assert.ErrorIs(t, s.Update(ctx, got), port.ErrNotFound)
}

func TestUserStoreReturnsCopies(t *testing.T) {
	s := NewUserStore()
	ctx := context.Background()
	email := mustEmail(t, "user@example.com")
	require.NoError(t, s.Create(ctx, &entity.User{Email: email, PasswordHash: "hash-a"}))

	got, err := s.Get(ctx, email)
	require.NoError(t, err)
	got.PasswordHash = "mutated"

	fresh, err := s.Get(ctx, email)
	require.NoError(t, err)
	assert.Equal(t, "hash-a", fresh.PasswordHash)
}

func TestBannedTokenStore(t *testing.T) {
	s := NewBannedTokenStore()
	ctx := context.Background()

	banned, err := s.IsBanned(ctx, "tok-1")
	require.NoError(t, err)
	assert.False(t, banned)

	require.NoError(t, s.Ban(ctx, "tok-1", time.Hour))
	banned, err = s.IsBanned(ctx, "tok-1")
	require.NoError(t, err)
	assert.True(t, banned)

	// Idempotent.
	require.NoError(t, s.Ban(ctx, "tok-1", time.Hour))
	banned, err = s.IsBanned(ctx, "tok-1")
	require.NoError(t, err)
	assert.True(t, banned)
}

func TestBannedTokenStoreEntriesExpire(t *testing.T) {
	s := NewBannedTokenStore()
	ctx := context.Background()

	current := time.Now()
	s.now = func() time.Time { return current }

	require.NoError(t, s.Ban(ctx, "tok-1", time.Minute))

	current = current.Add(30 * time.Second)
	banned, err := s.IsBanned(ctx, "tok-1")
	require.NoError(t, err)
	assert.True(t, banned)

	current = current.Add(31 * time.Second)
	banned, err = s.IsBanned(ctx, "tok-1")
	require.NoError(t, err)
	assert.False(t, banned)
}

func TestBannedTokenStoreKeepsLaterExpiry(t *testing.T) {
	s := NewBannedTokenStore()
	ctx := context.Background()

	current := time.Now()
	s.now = func() time.Time { return current }

	require.NoError(t, s.Ban(ctx, "tok-1", time.Hour))
	// A shorter re-ban must not end the entry early.
	require.NoError(t, s.Ban(ctx, "tok-1", time.Second))

	current = current.Add(time.Minute)
	banned, err := s.IsBanned(ctx, "tok-1")
	require.NoError(t, err)
	assert.True(t, banned)
}

func newAttempt(t *testing.T, email string) entity.TwoFaAttempt {
	t.Helper()
	code, err := entity.NewTwoFaCode()
	require.NoError(t, err)
	return entity.TwoFaAttempt{
		ID:        entity.NewTwoFaAttemptID(),
		Email:     mustEmail(t, email),
		Code:      code,
		Scope:     entity.ScopeStandard,
		ExpiresAt: time.Now().Add(10 * time.Minute),
	}
}

func TestTwoFaCodeStorePutGetDelete(t *testing.T) {
	s := NewTwoFaCodeStore()
	ctx := context.Background()

	attempt := newAttempt(t, "user@example.com")
	require.NoError(t, s.Put(ctx, attempt, 10*time.Minute))

	got, err := s.Get(ctx, attempt.ID)
	require.NoError(t, err)
	assert.Equal(t, attempt.Code, got.Code)
	assert.Equal(t, attempt.Scope, got.Scope)

	require.NoError(t, s.Delete(ctx, attempt.ID))
	_, err = s.Get(ctx, attempt.ID)
	assert.ErrorIs(t, err, port.ErrNotFound)

	// Deleting an absent attempt is a no-op.
	assert.NoError(t, s.Delete(ctx, attempt.ID))
}

func TestTwoFaCodeStoreLastWriteWins(t *testing.T) {
	s := NewTwoFaCodeStore()
	ctx := context.Background()

	first := newAttempt(t, "user@example.com")
	second := newAttempt(t, "user@example.com")
	require.NoError(t, s.Put(ctx, first, 10*time.Minute))
	require.NoError(t, s.Put(ctx, second, 10*time.Minute))

	_, err := s.Get(ctx, first.ID)
	assert.ErrorIs(t, err, port.ErrNotFound)

	got, err := s.Get(ctx, second.ID)
	require.NoError(t, err)
	assert.Equal(t, second.Code, got.Code)
}

func TestTwoFaCodeStoreIsolatesUsers(t *testing.T) {
	s := NewTwoFaCodeStore()
	ctx := context.Background()

	a := newAttempt(t, "a@example.com")
	b := newAttempt(t, "b@example.com")
	require.NoError(t, s.Put(ctx, a, 10*time.Minute))
	require.NoError(t, s.Put(ctx, b, 10*time.Minute))

	_, err := s.Get(ctx, a.ID)
	assert.NoError(t, err)
	_, err = s.Get(ctx, b.ID)
	assert.NoError(t, err)
}

func TestTwoFaCodeStoreExpiresLazily(t *testing.T) {
	s := NewTwoFaCodeStore()
	ctx := context.Background()

	current := time.Now()
	s.now = func() time.Time { return current }

	attempt := newAttempt(t, "user@example.com")
	attempt.ExpiresAt = current.Add(time.Minute)
	require.NoError(t, s.Put(ctx, attempt, time.Minute))

	_, err := s.Get(ctx, attempt.ID)
	require.NoError(t, err)

	current = current.Add(2 * time.Minute)
	_, err = s.Get(ctx, attempt.ID)
	assert.ErrorIs(t, err, port.ErrNotFound)
}
