package validation

import (
	"testing"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/go-auth-engine/internal/domain/valueobject"
)

// The binding rule must accept and reject exactly what the value object
// does, including non-ASCII special characters.
func TestStrongPasswordMatchesDomainRules(t *testing.T) {
	Init()
	v, ok := binding.Validator.Engine().(*validator.Validate)
	require.True(t, ok)

	tests := []struct {
		name     string
		password string
		valid    bool
	}{
		{"full complexity", "Secret123!", true},
		{"non-ascii special", "Secret123€", true},
		{"space as special", "Secret 123", true},
		{"too short", "Ab1!", false},
		{"no special", "Secret1234", false},
		{"no digit", "Secretive!", false},
		{"no upper", "secret123!", false},
		{"no lower", "SECRET123!", false},
		{"empty", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bindErr := v.Var(tt.password, "strongpwd")
			_, domainErr := valueobject.NewPassword(tt.password)
			if tt.valid {
				assert.NoError(t, bindErr)
				assert.NoError(t, domainErr)
			} else {
				assert.Error(t, bindErr)
				assert.Error(t, domainErr)
			}
		})
	}
}

func TestToDetailsUsesJSONFieldNames(t *testing.T) {
	Init()
	v, ok := binding.Validator.Engine().(*validator.Validate)
	require.True(t, ok)

	type payload struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required,strongpwd"`
	}
	err := v.Struct(payload{Email: "not-an-email", Password: "weak"})
	require.Error(t, err)

	details := ToDetails(err)
	assert.Contains(t, details, "email")
	assert.Contains(t, details, "password")
}
