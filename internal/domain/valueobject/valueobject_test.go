package valueobject

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/go-auth-engine/internal/domain/autherr"
)

func TestNewEmail(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{"simple", "user@example.com", "user@example.com", false},
		{"normalized to lowercase", "User@Example.COM", "user@example.com", false},
		{"surrounding whitespace", "  user@example.com  ", "user@example.com", false},
		{"plus addressing", "user+tag@example.com", "user+tag@example.com", false},
		{"empty", "", "", true},
		{"no at sign", "userexample.com", "", true},
		{"no local part", "@example.com", "", true},
		{"display name form rejected", "User <user@example.com>", "", true},
		{"spaces inside", "us er@example.com", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, err := NewEmail(tt.raw)
			if tt.wantErr {
				assert.ErrorIs(t, err, autherr.ErrValidation)
				assert.True(t, e.IsZero())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, e.String())
		})
	}
}

func TestEmailEquals(t *testing.T) {
	a, err := NewEmail("User@X.com")
	require.NoError(t, err)
	b, err := NewEmail("user@x.com")
	require.NoError(t, err)
	assert.True(t, a.Equals(b))
}

func TestNewPassword(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantErr bool
	}{
		{"valid", "Secret123!", false},
		{"valid with unicode special", "Secret123€", false},
		{"too short", "Ab1!xyz", true},
		{"no uppercase", "secret123!", true},
		{"no lowercase", "SECRET123!", true},
		{"no digit", "Secretwords!", true},
		{"no special", "Secret12345", true},
		{"empty", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := NewPassword(tt.raw)
			if tt.wantErr {
				assert.ErrorIs(t, err, autherr.ErrValidation)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.raw, p.Expose())
		})
	}
}

func TestPasswordStringMasksValue(t *testing.T) {
	p, err := NewPassword("Secret123!")
	require.NoError(t, err)
	assert.NotContains(t, p.String(), "Secret123!")
}
