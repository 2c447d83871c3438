package email

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/elidotco/bookingformspace/internal/config"
)

// Mock inbox kinds, derived from the message subject. Test tooling
// retrieves stored emails by recipient and kind.
const (
	KindBookingNotice       = "booking_notice"
	KindBookingConfirmation = "booking_confirmation"
	KindUnknown             = "unknown"
)

// RedisSender implements the Sender interface by storing emails in
// Redis instead of delivering them, so end-to-end tests can fetch what
// would have been sent.
type RedisSender struct {
	client *redis.Client
	cfg    *config.Config
}

// NewRedisSender creates a new RedisSender.
func NewRedisSender(client *redis.Client, cfg *config.Config) Sender {
	return &RedisSender{
		client: client,
		cfg:    cfg,
	}
}

// MessageKind classifies a message by its subject line for mock inbox keying.
func MessageKind(subject string) string {
	switch {
	case strings.Contains(subject, "New Booking Request"):
		return KindBookingNotice
	case strings.Contains(subject, "Booking Request Received"):
		return KindBookingConfirmation
	default:
		return KindUnknown
	}
}

// Send stores a JSON representation of the email in Redis under
// mockemail:<to>:<kind> with a short TTL.
func (s *RedisSender) Send(ctx context.Context, msg Message) (string, error) {
	kind := MessageKind(msg.Subject)
	messageID := "mock-" + uuid.NewString()

	emailData := map[string]interface{}{
		"to":         msg.To,
		"from":       envelopeFrom(msg, s.cfg),
		"reply_to":   msg.ReplyTo,
		"subject":    msg.Subject,
		"text":       msg.Text,
		"html":       msg.HTML,
		"message_id": messageID,
		"sent_at":    time.Now().UTC().Format(time.RFC3339Nano),
		"kind":       kind,
	}

	jsonData, err := json.Marshal(emailData)
	if err != nil {
		return "", fmt.Errorf("failed to marshal email data: %w", err)
	}

	key := fmt.Sprintf("mockemail:%s:%s", msg.To, kind)
	ttl := 5 * time.Minute

	if err := s.client.Set(ctx, key, string(jsonData), ttl).Err(); err != nil {
		return "", fmt.Errorf("failed to store email in Redis key '%s': %w", key, err)
	}

	log.Printf("Mock email stored in Redis key '%s' (TTL: %v, To: %s, Subject: %s)", key, ttl, msg.To, msg.Subject)
	return messageID, nil
}
