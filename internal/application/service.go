// Package application is the use-case orchestration layer. Each operation
// validates raw input into domain value objects, consults the ports, applies
// the domain rules and returns a typed outcome or an autherr sentinel. The
// layer owns no persistent state; everything durable lives behind the ports.
package application

import (
	"time"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-auth-engine/internal/domain/port"
	"github.com/oksasatya/go-auth-engine/pkg/helpers"
)

// Config carries the immutable tuning the use cases need. It is fixed at
// construction; there is no mutable process-wide state.
type Config struct {
	StandardTTL time.Duration
	ElevatedTTL time.Duration
	TwoFaTTL    time.Duration
	BcryptCost  int

	// RevokeTokenOnPasswordChange bans the presenting token after a
	// successful password change.
	RevokeTokenOnPasswordChange bool
}

// Service is the orchestration facade exposing one method per use case. It
// is safe for concurrent use; correctness under concurrency is delegated to
// the port implementations.
type Service struct {
	Users  port.UserStore
	Banned port.BannedTokenStore
	Codes  port.TwoFaCodeStore
	Email  port.EmailClient
	Issuer port.CredentialIssuer
	Logger *logrus.Logger
	Cfg    Config

	// dummyHash keeps the unknown-user login path timing-comparable with
	// the wrong-password path.
	dummyHash string
}

func NewService(users port.UserStore, banned port.BannedTokenStore, codes port.TwoFaCodeStore, email port.EmailClient, issuer port.CredentialIssuer, logger *logrus.Logger, cfg Config) (*Service, error) {
	dummy, err := helpers.NewDummyHash(cfg.BcryptCost)
	if err != nil {
		return nil, err
	}
	return &Service{
		Users:     users,
		Banned:    banned,
		Codes:     codes,
		Email:     email,
		Issuer:    issuer,
		Logger:    logger,
		Cfg:       cfg,
		dummyHash: dummy,
	}, nil
}
