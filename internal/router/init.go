package router

import (
	"github.com/oksasatya/go-auth-engine/internal/application"
	"github.com/oksasatya/go-auth-engine/internal/container"
	"github.com/oksasatya/go-auth-engine/internal/domain/port"
	"github.com/oksasatya/go-auth-engine/internal/infrastructure/email"
	pginfra "github.com/oksasatya/go-auth-engine/internal/infrastructure/postgres"
	"github.com/oksasatya/go-auth-engine/internal/infrastructure/redisstore"
	handlers "github.com/oksasatya/go-auth-engine/internal/interface/http"
	authmodule "github.com/oksasatya/go-auth-engine/internal/router/modules"
)

// buildEmailClient picks the delivery mechanism: queue when RabbitMQ is
// configured, direct Mailgun otherwise, log-only when sending is disabled.
func buildEmailClient() port.EmailClient {
	cfg := container.GetConfig()
	if !cfg.MailSendEnabled {
		return email.NewLogClient(container.GetLogger())
	}
	if pub := container.GetRabbitPub(); pub != nil {
		return email.NewQueueClient(pub)
	}
	return email.NewMailgunClient(container.GetMailgun())
}

// BuildAuthService wires the use-case facade from the container singletons.
func BuildAuthService() (*application.Service, error) {
	cfg := container.GetConfig()
	return application.NewService(
		pginfra.NewUserStore(container.GetPGPool()),
		redisstore.NewBannedTokenStore(container.GetRedis()),
		redisstore.NewTwoFaCodeStore(container.GetRedis()),
		buildEmailClient(),
		container.GetJWT(),
		container.GetLogger(),
		application.Config{
			StandardTTL:                 cfg.StandardTTL,
			ElevatedTTL:                 cfg.ElevatedTTL,
			TwoFaTTL:                    cfg.TwoFaTTL,
			BcryptCost:                  cfg.BcryptCost,
			RevokeTokenOnPasswordChange: cfg.RevokeTokenOnPasswordChange,
		},
	)
}

// InitModules initializes all application modules and registers them with
// the router registry. Called once during startup.
func InitModules(r *Registry) error {
	service, err := BuildAuthService()
	if err != nil {
		return err
	}
	handler := handlers.NewAuthHandler(service, container.GetLogger())
	r.Add(authmodule.NewAuthModule(handler))
	return nil
}
