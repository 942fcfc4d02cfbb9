package application

import (
	"context"
	"crypto/subtle"
	"errors"

	"github.com/oksasatya/go-auth-engine/internal/domain/autherr"
	"github.com/oksasatya/go-auth-engine/internal/domain/entity"
	"github.com/oksasatya/go-auth-engine/internal/domain/port"
)

// VerifyTwoFa resolves a pending challenge. A wrong code leaves the stored
// attempt in place so the caller may retry until natural expiry; a correct
// code consumes the attempt (single use) and mints a token with the scope
// the attempt was issued for.
func (s *Service) VerifyTwoFa(ctx context.Context, attemptID entity.TwoFaAttemptID, submittedCode string) (string, error) {
	attempt, err := s.Codes.Get(ctx, attemptID)
	if err != nil {
		if errors.Is(err, port.ErrNotFound) {
			return "", autherr.ErrNotFound
		}
		s.Logger.WithError(err).Error("verify-2fa: attempt lookup failed")
		return "", autherr.Infra(err)
	}

	if subtle.ConstantTimeCompare([]byte(attempt.Code), []byte(submittedCode)) != 1 {
		return "", autherr.ErrAuthentication
	}

	if err := s.Codes.Delete(ctx, attemptID); err != nil {
		s.Logger.WithError(err).Error("verify-2fa: consuming attempt failed")
		return "", autherr.Infra(err)
	}

	ttl := s.Cfg.StandardTTL
	if attempt.Scope == entity.ScopeElevated {
		ttl = s.Cfg.ElevatedTTL
	}
	token, err := s.Issuer.Mint(attempt.Email.String(), attempt.Scope, ttl)
	if err != nil {
		return "", autherr.Infra(err)
	}
	return token, nil
}
