package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTwoFaCodeShape(t *testing.T) {
	for i := 0; i < 20; i++ {
		code, err := NewTwoFaCode()
		require.NoError(t, err)
		require.Len(t, code, 6)
		for _, r := range code {
			assert.True(t, r >= '0' && r <= '9', "code %q must be numeric", code)
		}
	}
}

func TestNewTwoFaAttemptIDsDiffer(t *testing.T) {
	assert.NotEqual(t, NewTwoFaAttemptID(), NewTwoFaAttemptID())
}

func TestTwoFaAttemptExpired(t *testing.T) {
	now := time.Now()
	attempt := TwoFaAttempt{ExpiresAt: now.Add(time.Minute)}
	assert.False(t, attempt.Expired(now))
	assert.True(t, attempt.Expired(now.Add(time.Minute)))
	assert.True(t, attempt.Expired(now.Add(2*time.Minute)))
}

func TestScopeValid(t *testing.T) {
	assert.True(t, ScopeStandard.Valid())
	assert.True(t, ScopeElevated.Valid())
	assert.False(t, Scope("root").Valid())
	assert.False(t, Scope("").Valid())
}

func TestTokenClaimsRemainingTTL(t *testing.T) {
	now := time.Now()
	c := TokenClaims{ExpiresAt: now.Add(time.Hour)}
	assert.Equal(t, time.Hour, c.RemainingTTL(now))
	assert.True(t, c.RemainingTTL(now.Add(2*time.Hour)) < 0)
}
