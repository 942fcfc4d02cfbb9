package application

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/oksasatya/go-auth-engine/internal/domain/autherr"
	"github.com/oksasatya/go-auth-engine/internal/domain/entity"
	"github.com/oksasatya/go-auth-engine/internal/domain/port"
	"github.com/oksasatya/go-auth-engine/internal/domain/valueobject"
	"github.com/oksasatya/go-auth-engine/pkg/helpers"
	"github.com/oksasatya/go-auth-engine/pkg/mailer/templates"
)

// LoginResult is the outcome of Login and Elevate. Exactly one of Token and
// AttemptID is set: a token when the credential check completed on its own,
// an attempt id when a 2FA challenge was issued instead.
type LoginResult struct {
	Token     string
	AttemptID entity.TwoFaAttemptID
}

// TwoFaRequired reports whether the caller must follow up with VerifyTwoFa.
func (r LoginResult) TwoFaRequired() bool { return r.AttemptID != "" }

// Login authenticates raw credentials. Without 2FA it mints a standard-scope
// token; with 2FA it issues a challenge and returns the attempt id.
func (s *Service) Login(ctx context.Context, rawEmail, rawPassword string) (LoginResult, error) {
	validated, err := s.authenticate(ctx, rawEmail, rawPassword)
	if err != nil {
		return LoginResult{}, err
	}
	if validated.RequiresTwoFa {
		return s.issueTwoFaChallenge(ctx, validated.Email, entity.ScopeStandard)
	}
	token, err := s.Issuer.Mint(validated.Email.String(), entity.ScopeStandard, s.Cfg.StandardTTL)
	if err != nil {
		return LoginResult{}, autherr.Infra(err)
	}
	return LoginResult{Token: token}, nil
}

// authenticate performs the shared credential check for Login and Elevate.
// Unknown user and wrong password return the same error after comparable
// work: when the lookup misses, the password is still compared against a
// reference hash so response timing does not confirm account existence.
func (s *Service) authenticate(ctx context.Context, rawEmail, rawPassword string) (entity.ValidatedUser, error) {
	email, err := valueobject.NewEmail(rawEmail)
	if err != nil {
		return entity.ValidatedUser{}, err
	}
	password, err := valueobject.NewPassword(rawPassword)
	if err != nil {
		return entity.ValidatedUser{}, err
	}

	u, err := s.Users.Get(ctx, email)
	if err != nil {
		if errors.Is(err, port.ErrNotFound) {
			helpers.CompareHashAndPassword(s.dummyHash, password.Expose())
			return entity.ValidatedUser{}, autherr.ErrAuthentication
		}
		s.Logger.WithError(err).Error("login: user lookup failed")
		return entity.ValidatedUser{}, autherr.Infra(err)
	}
	if !helpers.CompareHashAndPassword(u.PasswordHash, password.Expose()) {
		return entity.ValidatedUser{}, autherr.ErrAuthentication
	}
	return entity.ValidatedUser{Email: u.Email, RequiresTwoFa: u.RequiresTwoFa}, nil
}

// issueTwoFaChallenge stores a fresh single-use code and dispatches it via
// email. Storage and delivery are one logical step: if the send fails the
// stored code is removed before the error is surfaced, so no orphaned code
// stays verifiable. The intended scope travels with the attempt.
func (s *Service) issueTwoFaChallenge(ctx context.Context, email valueobject.Email, scope entity.Scope) (LoginResult, error) {
	code, err := entity.NewTwoFaCode()
	if err != nil {
		return LoginResult{}, autherr.Infra(err)
	}
	attempt := entity.TwoFaAttempt{
		ID:        entity.NewTwoFaAttemptID(),
		Email:     email,
		Code:      code,
		Scope:     scope,
		ExpiresAt: time.Now().Add(s.Cfg.TwoFaTTL),
	}
	if err := s.Codes.Put(ctx, attempt, s.Cfg.TwoFaTTL); err != nil {
		s.Logger.WithError(err).Error("login: storing 2fa code failed")
		return LoginResult{}, autherr.Infra(err)
	}

	msg := port.EmailMessage{
		To:      email,
		Subject: "Your verification code",
		Text: fmt.Sprintf(
			"Your verification code is %s.\n\nAttempt id: %s\nThe code expires in %s and can be used once.",
			attempt.Code, attempt.ID, s.Cfg.TwoFaTTL,
		),
		Template: templates.TwoFaCode,
		Data: map[string]any{
			"Code":      attempt.Code,
			"AttemptID": string(attempt.ID),
			"ExpiresIn": s.Cfg.TwoFaTTL.String(),
		},
	}
	if err := s.Email.Send(ctx, msg); err != nil {
		if delErr := s.Codes.Delete(ctx, attempt.ID); delErr != nil {
			s.Logger.WithError(delErr).Warn("login: cleanup of undelivered 2fa code failed")
		}
		s.Logger.WithError(err).Error("login: 2fa code delivery failed")
		return LoginResult{}, autherr.Infra(err)
	}

	return LoginResult{AttemptID: attempt.ID}, nil
}
