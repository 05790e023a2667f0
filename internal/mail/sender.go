package mail

import (
	"context"
	"errors"
)

var ErrNotConfigured = errors.New("mail: sender not configured")

// Message is a plain-text mail addressed to the store inbox.
type Message struct {
	FromName  string
	FromEmail string
	Subject   string
	Body      string
}

type Sender interface {
	Send(ctx context.Context, msg Message) error
}

// Disabled rejects every message. It stands in when no mail provider
// is configured.
type Disabled struct{}

func (Disabled) Send(context.Context, Message) error {
	return ErrNotConfigured
}
