package application

import (
	"context"
	"errors"
	"time"

	"github.com/oksasatya/go-auth-engine/internal/domain/autherr"
	"github.com/oksasatya/go-auth-engine/internal/domain/entity"
	"github.com/oksasatya/go-auth-engine/internal/domain/port"
	"github.com/oksasatya/go-auth-engine/internal/domain/valueobject"
	"github.com/oksasatya/go-auth-engine/pkg/helpers"
)

// Signup creates an account. The store's atomic uniqueness guarantee is the
// only duplicate guard; there is no read-then-insert, so two concurrent
// signups for the same address resolve to exactly one success. Returns the
// created identity, never the password or hash.
func (s *Service) Signup(ctx context.Context, rawEmail, rawPassword string, requiresTwoFa bool) (string, error) {
	email, err := valueobject.NewEmail(rawEmail)
	if err != nil {
		return "", err
	}
	password, err := valueobject.NewPassword(rawPassword)
	if err != nil {
		return "", err
	}

	hash, err := helpers.HashPassword(password.Expose(), s.Cfg.BcryptCost)
	if err != nil {
		return "", autherr.Infra(err)
	}

	now := time.Now()
	u := &entity.User{
		Email:         email,
		PasswordHash:  hash,
		RequiresTwoFa: requiresTwoFa,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := s.Users.Create(ctx, u); err != nil {
		if errors.Is(err, port.ErrConflict) {
			return "", autherr.ErrConflict
		}
		s.Logger.WithError(err).Error("signup: user create failed")
		return "", autherr.Infra(err)
	}

	s.Logger.WithField("requires_2fa", requiresTwoFa).Info("signup: account created")
	return email.String(), nil
}
