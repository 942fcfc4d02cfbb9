package application

import (
	"context"

	"github.com/oksasatya/go-auth-engine/internal/domain/autherr"
	"github.com/oksasatya/go-auth-engine/internal/domain/entity"
)

// Elevate re-authenticates with raw credentials and mints a short-lived
// elevated-scope token. A user that requires 2FA goes through the same
// challenge flow as Login; the attempt records the elevated scope, so the
// token minted by VerifyTwoFa carries it without the caller's say-so.
func (s *Service) Elevate(ctx context.Context, rawEmail, rawPassword string) (LoginResult, error) {
	validated, err := s.authenticate(ctx, rawEmail, rawPassword)
	if err != nil {
		return LoginResult{}, err
	}
	if validated.RequiresTwoFa {
		return s.issueTwoFaChallenge(ctx, validated.Email, entity.ScopeElevated)
	}
	token, err := s.Issuer.Mint(validated.Email.String(), entity.ScopeElevated, s.Cfg.ElevatedTTL)
	if err != nil {
		return LoginResult{}, autherr.Infra(err)
	}
	return LoginResult{Token: token}, nil
}
