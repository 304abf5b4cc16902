package email

import (
	"context"
	"fmt"

	"github.com/pvoloshyn/airdesk/internal/kafka"
)

type Sender struct{}

func NewSender() *Sender {
	return &Sender{}
}

// Send delivers an order confirmation. Stubbed to stdout; a real SMTP
// integration plugs in here.
func (s *Sender) Send(ctx context.Context, event kafka.OrderEvent) error {
	fmt.Printf("send email to %s: order %s (%d tickets)\n", event.ContactEmail, event.Reference, len(event.Tickets))
	return nil
}
