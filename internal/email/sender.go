package email

import (
	"context"
	"fmt"
	"log"
	"net/mail"
	"net/smtp"

	"github.com/google/uuid"

	"github.com/elidotco/bookingformspace/internal/config"
)

// Message is the descriptor handed to a Sender: one recipient, an
// optional Reply-To override, and parallel plain-text/HTML bodies.
type Message struct {
	From    string
	To      string
	ReplyTo string
	Subject string
	Text    string
	HTML    string
}

// Sender defines the interface for delivering a single email message.
// On success it returns an opaque delivery identifier; on any
// transport, authentication or recipient failure it returns an error.
type Sender interface {
	Send(ctx context.Context, msg Message) (string, error)
}

// SMTPSender implements the Sender interface using Go's net/smtp package.
type SMTPSender struct {
	cfg  *config.Config
	auth smtp.Auth
	addr string
}

// NewSMTPSender creates a new SMTPSender.
// It returns Sender so we can easily swap implementations (e.g., for testing).
func NewSMTPSender(cfg *config.Config) Sender {
	if cfg.SmtpHost == "" { // If no SMTP host configured, use a mock/logging sender
		log.Println("SMTP host not configured, using logging email sender.")
		return &LoggingSender{cfg: cfg}
	}

	// Setup SMTP authentication
	auth := smtp.PlainAuth(
		"", // identity
		cfg.SmtpUsername,
		cfg.SmtpPassword,
		cfg.SmtpHost,
	)
	addr := fmt.Sprintf("%s:%d", cfg.SmtpHost, cfg.SmtpPort)

	return &SMTPSender{
		cfg:  cfg,
		auth: auth,
		addr: addr,
	}
}

// Send sends an email using SMTP. The raw MIME message is built from
// the Message descriptor; the generated Message-ID doubles as the
// delivery identifier.
func (s *SMTPSender) Send(ctx context.Context, msg Message) (string, error) {
	messageID := NewMessageID(s.cfg.SmtpHost)
	raw := BuildRawMessage(msg, messageID)

	err := smtp.SendMail(s.addr, s.auth, envelopeFrom(msg, s.cfg), []string{msg.To}, raw)
	if err != nil {
		log.Printf("Failed to send email via SMTP to %s: %v", msg.To, err)
		return "", fmt.Errorf("smtp error: %w", err)
	}
	log.Printf("Email sent successfully via SMTP to %s (Subject: %s)", msg.To, msg.Subject)
	return messageID, nil
}

// envelopeFrom picks the SMTP envelope sender as a bare address. A
// display-name From like `"Ama Mensah" <addr>` stays in the message
// headers only; the reverse-path must carry just the address or the
// relay rejects the MAIL FROM command.
func envelopeFrom(msg Message, cfg *config.Config) string {
	if msg.From == "" {
		return cfg.SmtpFromAddress
	}
	if addr, err := mail.ParseAddress(msg.From); err == nil {
		return addr.Address
	}
	return msg.From
}

// LoggingSender is a mock implementation that just logs email details.
// Useful for development or when SMTP isn't configured.
type LoggingSender struct {
	cfg *config.Config
}

// Send logs the email details instead of sending and fabricates a
// delivery identifier so callers see the same contract as SMTP.
func (s *LoggingSender) Send(ctx context.Context, msg Message) (string, error) {
	messageID := "logged-" + uuid.NewString()
	log.Printf("--- Sending Email (Logged) ---")
	log.Printf("From: %s", envelopeFrom(msg, s.cfg))
	log.Printf("To: %s", msg.To)
	if msg.ReplyTo != "" {
		log.Printf("Reply-To: %s", msg.ReplyTo)
	}
	log.Printf("Subject: %s", msg.Subject)
	log.Println("--- Text Body ---")
	log.Println(msg.Text)
	log.Println("--- End Email ---")
	return messageID, nil
}
