package mailer

import (
	"context"
	"fmt"
	"log"
	"net/url"
	"strings"
)

// Message is one outgoing email.
type Message struct {
	To      string `json:"to"`
	From    string `json:"from"`
	Subject string `json:"subject"`
	Body    string `json:"body"` // HTML
}

// Mailer delivers messages through some transport.
type Mailer interface {
	Send(ctx context.Context, msg Message) error
	Close() error
}

// LogMailer prints messages instead of sending them. Used in development.
type LogMailer struct {
	From string
}

func NewLogMailer(from string) *LogMailer {
	return &LogMailer{From: from}
}

func (m *LogMailer) Send(_ context.Context, msg Message) error {
	if strings.TrimSpace(msg.To) == "" {
		return fmt.Errorf("mail recipient is required")
	}
	if msg.From == "" {
		msg.From = m.From
	}
	log.Printf("mail to=%s from=%s subject=%q\n%s", msg.To, msg.From, msg.Subject, msg.Body)
	return nil
}

func (m *LogMailer) Close() error { return nil }

// Options selects and configures a transport.
type Options struct {
	Transport   string // log | rabbitmq
	From        string
	RabbitMQURL string
	Queue       string
}

// New builds the Mailer for opts.Transport.
func New(opts Options) (Mailer, error) {
	switch strings.ToLower(opts.Transport) {
	case "", "log":
		return NewLogMailer(opts.From), nil
	case "rabbitmq":
		return NewRabbitMQMailer(opts.RabbitMQURL, opts.Queue, opts.From)
	default:
		return nil, fmt.Errorf("unknown mail transport %q", opts.Transport)
	}
}

// VerificationLink is the frontend page that confirms an email token.
func VerificationLink(frontendURL, token string) string {
	return strings.TrimRight(frontendURL, "/") + "/new-verification?token=" + url.QueryEscape(token)
}

// VerificationMessage builds the account confirmation email.
func VerificationMessage(frontendURL, to, token string) Message {
	link := VerificationLink(frontendURL, token)
	return Message{
		To:      to,
		Subject: "Confirma tu correo",
		Body:    fmt.Sprintf(`<p>Haz clic <a href="%s">aquí</a> para confirmar tu correo.</p>`, link),
	}
}
