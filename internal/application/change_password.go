package application

import (
	"context"
	"errors"
	"time"

	"github.com/oksasatya/go-auth-engine/internal/domain/autherr"
	"github.com/oksasatya/go-auth-engine/internal/domain/port"
	"github.com/oksasatya/go-auth-engine/internal/domain/valueobject"
	"github.com/oksasatya/go-auth-engine/pkg/helpers"
)

// ChangePassword replaces the account password. It demands an elevated,
// unrevoked token. Other outstanding tokens for the account are left alone
// unless RevokeTokenOnPasswordChange is set, in which case the presenting
// token is banned after the change (the ban list addresses token ids, so
// tokens this call never saw cannot be revoked here).
func (s *Service) ChangePassword(ctx context.Context, token, newRawPassword string) error {
	claims, err := s.VerifyElevatedToken(ctx, token)
	if err != nil {
		return err
	}
	password, err := valueobject.NewPassword(newRawPassword)
	if err != nil {
		return err
	}
	email, err := valueobject.NewEmail(claims.Identity)
	if err != nil {
		return autherr.ErrAuthentication
	}

	u, err := s.Users.Get(ctx, email)
	if err != nil {
		if errors.Is(err, port.ErrNotFound) {
			return autherr.ErrNotFound
		}
		s.Logger.WithError(err).Error("change-password: user lookup failed")
		return autherr.Infra(err)
	}

	hash, err := helpers.HashPassword(password.Expose(), s.Cfg.BcryptCost)
	if err != nil {
		return autherr.Infra(err)
	}
	u.PasswordHash = hash
	u.UpdatedAt = time.Now()
	if err := s.Users.Update(ctx, u); err != nil {
		if errors.Is(err, port.ErrNotFound) {
			return autherr.ErrNotFound
		}
		s.Logger.WithError(err).Error("change-password: user update failed")
		return autherr.Infra(err)
	}

	if s.Cfg.RevokeTokenOnPasswordChange {
		if err := s.Banned.Ban(ctx, claims.TokenID, claims.RemainingTTL(time.Now())); err != nil {
			s.Logger.WithError(err).Error("change-password: revoking token failed")
			return autherr.Infra(err)
		}
	}
	s.Logger.Info("change-password: password updated")
	return nil
}
