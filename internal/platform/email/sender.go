package email

import "context"

// Message is an outbound email. Body is an HTML fragment; the sender
// adds the MIME framing.
type Message struct {
	From    string
	To      []string
	Subject string
	Body    string
}

// Sender delivers outbound mail. Services hold this interface so tests
// and mail-less deployments can swap the transport out.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

// NoopSender discards messages. Used when SMTP is not configured so
// auto-responses degrade to no-ops instead of errors.
type NoopSender struct{}

func (NoopSender) Send(context.Context, Message) error { return nil }
