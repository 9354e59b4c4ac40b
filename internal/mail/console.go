package mail

import (
	"context"

	"github.com/danielmorris2014/fiber-guys-sub000/internal/logger"
)

// ConsoleMailer is the dispatcher fallback for local development: it logs
// a structured summary of each message instead of sending it.
type ConsoleMailer struct {
	log logger.Logger
}

// NewConsole creates a ConsoleMailer.
func NewConsole(log logger.Logger) *ConsoleMailer {
	return &ConsoleMailer{log: log}
}

func (m *ConsoleMailer) Send(_ context.Context, msg Message) error {
	fields := map[string]interface{}{
		"to":      msg.To,
		"subject": msg.Subject,
	}
	if msg.ReplyTo != "" {
		fields["reply_to"] = msg.ReplyTo
	}
	if len(msg.Attachments) > 0 {
		names := make([]string, 0, len(msg.Attachments))
		for _, att := range msg.Attachments {
			names = append(names, att.Filename)
		}
		fields["attachments"] = names
	}
	m.log.Info("email send skipped, no provider configured", fields)
	return nil
}
