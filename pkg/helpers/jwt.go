package helpers

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/oksasatya/go-auth-engine/internal/domain/entity"
	"github.com/oksasatya/go-auth-engine/internal/domain/port"
)

// JWTManager mints and verifies HS256 credential tokens. It implements the
// CredentialIssuer port; scope and a unique token id travel in the claims so
// the revocation list can address individual tokens.
type JWTManager struct {
	Secret []byte
}

func NewJWTManager(secret string) *JWTManager {
	return &JWTManager{Secret: []byte(secret)}
}

type Claims struct {
	Scope string `json:"scope"`
	jwt.RegisteredClaims
}

func (m *JWTManager) Mint(identity string, scope entity.Scope, ttl time.Duration) (string, error) {
	if !scope.Valid() {
		return "", errors.New("unknown token scope")
	}
	now := time.Now()
	claims := &Claims{
		Scope: string(scope),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   identity,
			ID:        uuid.NewString(),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(m.Secret)
}

func (m *JWTManager) Verify(token string) (*entity.TokenClaims, error) {
	claims := &Claims{}
	tkn, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return m.Secret, nil
	})
	if err != nil {
		return nil, err
	}
	if !tkn.Valid {
		return nil, errors.New("invalid token")
	}
	scope := entity.Scope(claims.Scope)
	if !scope.Valid() || claims.ID == "" || claims.Subject == "" || claims.ExpiresAt == nil {
		return nil, errors.New("malformed claims")
	}
	return &entity.TokenClaims{
		Identity:  claims.Subject,
		Scope:     scope,
		TokenID:   claims.ID,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}

var _ port.CredentialIssuer = (*JWTManager)(nil)
