package mail

import "context"

// Package mail composes and dispatches transactional email for the
// submission funnels. Callers treat every send as best-effort: a failed
// notification is logged, never surfaced to the submitter.

// Attachment is a file included directly in an email.
type Attachment struct {
	Filename    string
	ContentType string
	Content     []byte
}

// Message is one outbound email.
type Message struct {
	From        string
	To          []string
	ReplyTo     string
	Subject     string
	HTML        string
	Attachments []Attachment
}

// Mailer sends one message per call.
type Mailer interface {
	Send(ctx context.Context, msg Message) error
}
