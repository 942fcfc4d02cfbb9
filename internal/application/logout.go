package application

import (
	"context"
	"time"

	"github.com/oksasatya/go-auth-engine/internal/domain/autherr"
)

// Logout revokes the presented token by banning its id for the remainder of
// its natural validity. Banning an already-banned id is a silent success.
func (s *Service) Logout(ctx context.Context, token string) error {
	claims, err := s.Issuer.Verify(token)
	if err != nil {
		return autherr.ErrAuthentication
	}
	ttl := claims.RemainingTTL(time.Now())
	if ttl <= 0 {
		return autherr.ErrAuthentication
	}
	if err := s.Banned.Ban(ctx, claims.TokenID, ttl); err != nil {
		s.Logger.WithError(err).Error("logout: banning token failed")
		return autherr.Infra(err)
	}
	return nil
}
