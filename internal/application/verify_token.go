package application

import (
	"context"

	"github.com/oksasatya/go-auth-engine/internal/domain/autherr"
	"github.com/oksasatya/go-auth-engine/internal/domain/entity"
)

// VerifyToken introspects a bearer token: signature, expiry and the
// revocation list. A banned id fails exactly like an invalid token.
func (s *Service) VerifyToken(ctx context.Context, token string) (*entity.TokenClaims, error) {
	claims, err := s.Issuer.Verify(token)
	if err != nil {
		return nil, autherr.ErrAuthentication
	}
	banned, err := s.Banned.IsBanned(ctx, claims.TokenID)
	if err != nil {
		s.Logger.WithError(err).Error("verify-token: ban lookup failed")
		return nil, autherr.Infra(err)
	}
	if banned {
		return nil, autherr.ErrAuthentication
	}
	return claims, nil
}

// VerifyElevatedToken additionally requires elevated scope; a valid but
// standard-scope token fails with ErrPermission.
func (s *Service) VerifyElevatedToken(ctx context.Context, token string) (*entity.TokenClaims, error) {
	claims, err := s.VerifyToken(ctx, token)
	if err != nil {
		return nil, err
	}
	if claims.Scope != entity.ScopeElevated {
		return nil, autherr.ErrPermission
	}
	return claims, nil
}
