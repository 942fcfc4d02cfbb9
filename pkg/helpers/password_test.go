package helpers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashPasswordRoundTrip(t *testing.T) {
	hash, err := HashPassword("Secret123!", bcrypt.MinCost)
	require.NoError(t, err)

	assert.NotEqual(t, "Secret123!", hash)
	assert.True(t, CompareHashAndPassword(hash, "Secret123!"))
	assert.False(t, CompareHashAndPassword(hash, "Wrong456$pw"))
}

func TestHashPasswordSaltsPerCall(t *testing.T) {
	h1, err := HashPassword("Secret123!", bcrypt.MinCost)
	require.NoError(t, err)
	h2, err := HashPassword("Secret123!", bcrypt.MinCost)
	require.NoError(t, err)
	assert.NotEqual(t, h1, h2)
}

func TestHashPasswordZeroCostUsesDefault(t *testing.T) {
	hash, err := HashPassword("Secret123!", 0)
	require.NoError(t, err)
	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, bcrypt.DefaultCost, cost)
}

func TestNewDummyHashIsComparable(t *testing.T) {
	dummy, err := NewDummyHash(bcrypt.MinCost)
	require.NoError(t, err)
	// The reference hash exists to be compared against and to fail.
	assert.False(t, CompareHashAndPassword(dummy, "anything"))
}
