package port

import (
	"context"

	"github.com/oksasatya/go-auth-engine/internal/domain/valueobject"
)

// EmailMessage is one outgoing message. Text is always set and is what a
// plain transport delivers; Template plus Data let richer transports render
// an HTML variant of the same content.
type EmailMessage struct {
	To       valueobject.Email
	Subject  string
	Text     string
	Template string
	Data     map[string]any
}

// EmailClient delivers a message to one recipient. Failures are surfaced to
// the caller, never swallowed; the use cases treat a failed send as a failed
// operation.
type EmailClient interface {
	Send(ctx context.Context, msg EmailMessage) error
}
