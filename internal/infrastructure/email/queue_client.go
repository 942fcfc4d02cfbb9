package email

import (
	"context"

	"github.com/oksasatya/go-auth-engine/internal/domain/port"
	"github.com/oksasatya/go-auth-engine/pkg/helpers"
	"github.com/oksasatya/go-auth-engine/pkg/mailer"
)

// QueueClient hands the message to RabbitMQ; the email worker delivers it.
// A failed publish is a failed send, which keeps the use-case guarantee
// that no 2FA code outlives an undelivered email.
type QueueClient struct {
	pub *helpers.RabbitPublisher
}

func NewQueueClient(pub *helpers.RabbitPublisher) *QueueClient {
	return &QueueClient{pub: pub}
}

func (c *QueueClient) Send(ctx context.Context, msg port.EmailMessage) error {
	job := mailer.EmailJob{
		To:       msg.To.String(),
		Subject:  msg.Subject,
		Text:     msg.Text,
		Template: msg.Template,
		Data:     msg.Data,
	}
	return c.pub.PublishJSON(ctx, job)
}

var _ port.EmailClient = (*QueueClient)(nil)
