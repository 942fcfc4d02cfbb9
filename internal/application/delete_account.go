package application

import (
	"context"
	"errors"
	"time"

	"github.com/oksasatya/go-auth-engine/internal/domain/autherr"
	"github.com/oksasatya/go-auth-engine/internal/domain/port"
	"github.com/oksasatya/go-auth-engine/internal/domain/valueobject"
)

// DeleteAccount removes the account behind an elevated token and then
// revokes that token. The ban is sequenced after a successful delete so a
// failed delete never leaves a banned token on a live account.
func (s *Service) DeleteAccount(ctx context.Context, token string) error {
	claims, err := s.VerifyElevatedToken(ctx, token)
	if err != nil {
		return err
	}
	email, err := valueobject.NewEmail(claims.Identity)
	if err != nil {
		return autherr.ErrAuthentication
	}

	if err := s.Users.Delete(ctx, email); err != nil {
		if errors.Is(err, port.ErrNotFound) {
			return autherr.ErrNotFound
		}
		s.Logger.WithError(err).Error("delete-account: user delete failed")
		return autherr.Infra(err)
	}

	if err := s.Banned.Ban(ctx, claims.TokenID, claims.RemainingTTL(time.Now())); err != nil {
		s.Logger.WithError(err).Error("delete-account: banning token failed")
		return autherr.Infra(err)
	}
	s.Logger.Info("delete-account: account removed")
	return nil
}
