package mail

import (
	"context"
	"errors"
	"fmt"

	"github.com/PythonShinobi/Otaku-Store/internal/config"

	"github.com/sendgrid/rest"
	"github.com/sendgrid/sendgrid-go"
	sgmail "github.com/sendgrid/sendgrid-go/helpers/mail"
)

const senderName = "Otaku Store"

type sendAPI interface {
	SendWithContext(ctx context.Context, email *sgmail.SGMailV3) (*rest.Response, error)
}

// SendGridSender delivers contact messages to the store inbox. The
// visitor address goes into Reply-To since SendGrid only sends from
// verified senders.
type SendGridSender struct {
	client sendAPI
	inbox  string
}

func NewSendGridSender(cfg config.Mail) (*SendGridSender, error) {
	if cfg.SendGridAPIKey == "" || cfg.ContactEmail == "" {
		return nil, ErrNotConfigured
	}
	return newSendGridSender(sendgrid.NewSendClient(cfg.SendGridAPIKey), cfg.ContactEmail), nil
}

func newSendGridSender(client sendAPI, inbox string) *SendGridSender {
	return &SendGridSender{client: client, inbox: inbox}
}

func (s *SendGridSender) Send(ctx context.Context, msg Message) error {
	if msg.FromEmail == "" {
		return errors.New("mail: sender address required")
	}

	from := sgmail.NewEmail(senderName, s.inbox)
	to := sgmail.NewEmail(senderName, s.inbox)
	m := sgmail.NewSingleEmail(from, msg.Subject, to, msg.Body, "")
	m.SetReplyTo(sgmail.NewEmail(msg.FromName, msg.FromEmail))

	resp, err := s.client.SendWithContext(ctx, m)
	if err != nil {
		return fmt.Errorf("mail: sendgrid: %w", err)
	}
	if resp.StatusCode >= 400 {
		return fmt.Errorf("mail: sendgrid status %d: %s", resp.StatusCode, resp.Body)
	}
	return nil
}
