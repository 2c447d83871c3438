package email

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// NewMessageID generates an RFC 5322 style Message-ID. The host part
// falls back to "localhost" when no SMTP host is configured.
func NewMessageID(host string) string {
	if host == "" {
		host = "localhost"
	}
	return fmt.Sprintf("<%s@%s>", uuid.NewString(), host)
}

// BuildRawMessage assembles the full MIME message for a Message,
// including headers. Text and HTML bodies are carried as
// multipart/alternative parts; when the HTML body is empty a plain
// text/plain message is produced instead.
func BuildRawMessage(msg Message, messageID string) []byte {
	var sb strings.Builder

	writeHeader := func(key, value string) {
		sb.WriteString(key)
		sb.WriteString(": ")
		sb.WriteString(value)
		sb.WriteString("\r\n")
	}

	writeHeader("From", msg.From)
	writeHeader("To", msg.To)
	if msg.ReplyTo != "" {
		writeHeader("Reply-To", msg.ReplyTo)
	}
	writeHeader("Subject", msg.Subject)
	writeHeader("Date", time.Now().Format(time.RFC1123Z))
	writeHeader("Message-ID", messageID)
	writeHeader("MIME-Version", "1.0")

	if msg.HTML == "" {
		writeHeader("Content-Type", `text/plain; charset="UTF-8"`)
		sb.WriteString("\r\n")
		sb.WriteString(msg.Text)
		sb.WriteString("\r\n")
		return []byte(sb.String())
	}

	boundary := "b-" + uuid.NewString()
	writeHeader("Content-Type", fmt.Sprintf(`multipart/alternative; boundary="%s"`, boundary))
	sb.WriteString("\r\n")

	// Plain text part first so clients preferring the last part pick HTML.
	sb.WriteString("--" + boundary + "\r\n")
	sb.WriteString("Content-Type: text/plain; charset=\"UTF-8\"\r\n\r\n")
	sb.WriteString(msg.Text)
	sb.WriteString("\r\n")

	sb.WriteString("--" + boundary + "\r\n")
	sb.WriteString("Content-Type: text/html; charset=\"UTF-8\"\r\n\r\n")
	sb.WriteString(msg.HTML)
	sb.WriteString("\r\n")

	sb.WriteString("--" + boundary + "--\r\n")
	return []byte(sb.String())
}
