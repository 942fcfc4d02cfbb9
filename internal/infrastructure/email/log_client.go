package email

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-auth-engine/internal/domain/port"
)

// LogClient is used when MAIL_SEND_ENABLED is off. It records that a send
// happened without the body, so codes never reach the logs.
type LogClient struct {
	Logger *logrus.Logger
}

func NewLogClient(logger *logrus.Logger) *LogClient {
	return &LogClient{Logger: logger}
}

func (c *LogClient) Send(_ context.Context, msg port.EmailMessage) error {
	c.Logger.WithFields(logrus.Fields{"to": msg.To.String(), "subject": msg.Subject}).Info("email sending disabled, message dropped")
	return nil
}

var _ port.EmailClient = (*LogClient)(nil)
