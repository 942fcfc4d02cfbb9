// Package email adapts concrete delivery mechanisms to the EmailClient
// port: direct Mailgun sends, queue-backed dispatch through RabbitMQ, and a
// log-only client for environments with sending disabled.
package email

import (
	"context"

	"github.com/oksasatya/go-auth-engine/internal/domain/port"
	"github.com/oksasatya/go-auth-engine/pkg/mailer"
	"github.com/oksasatya/go-auth-engine/pkg/mailer/templates"
)

// MailgunClient sends synchronously through Mailgun. A delivery failure is
// returned to the caller; the use case treats it as a failed operation.
type MailgunClient struct {
	mg *mailer.Mailgun
}

func NewMailgunClient(mg *mailer.Mailgun) *MailgunClient {
	return &MailgunClient{mg: mg}
}

func (c *MailgunClient) Send(ctx context.Context, msg port.EmailMessage) error {
	html := ""
	if msg.Template != "" {
		rendered, err := templates.RenderHTML(msg.Template, msg.Data)
		if err != nil {
			return err
		}
		html = rendered
	}
	return c.mg.Send(ctx, msg.To.String(), msg.Subject, msg.Text, html)
}

var _ port.EmailClient = (*MailgunClient)(nil)
