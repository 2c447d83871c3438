package email

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/elidotco/bookingformspace/internal/config"
)

func TestNewFileEmailSender_EmptyPath(t *testing.T) {
	_, err := NewFileEmailSender("  ", &config.Config{})
	assert.Error(t, err)
}

func TestFileEmailSender_Send_AppendsFramedEntries(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "logs", "emails.log")
	sender, err := NewFileEmailSender(logPath, &config.Config{SmtpFromAddress: "noreply@example.com"})
	require.NoError(t, err)

	msg := Message{
		From:    "noreply@example.com",
		To:      "ama.mensah@example.com",
		Subject: "Booking Request Received - Daughters Of Glorious Jesus",
		Text:    "Thank you for your booking request.",
		HTML:    "<p>Thank you for your booking request.</p>",
	}

	id, err := sender.Send(context.Background(), msg)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(id, "file-"))

	content, err := os.ReadFile(logPath)
	require.NoError(t, err)
	body := string(content)

	assert.Contains(t, body, "--- Email Logged at ")
	assert.Contains(t, body, "(To: ama.mensah@example.com, Subject: Booking Request Received - Daughters Of Glorious Jesus)")
	assert.Contains(t, body, "From: noreply@example.com")
	assert.Contains(t, body, "Message-ID: "+id)
	assert.Contains(t, body, "Thank you for your booking request.")
	assert.Contains(t, body, "<p>Thank you for your booking request.</p>")
	assert.True(t, strings.HasSuffix(body, "--- End Logged Email ---\n\n"))

	// A second send appends a second framed entry.
	_, err = sender.Send(context.Background(), msg)
	require.NoError(t, err)

	content, err = os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(string(content), "--- Email Logged at "))
	assert.Equal(t, 2, strings.Count(string(content), "--- End Logged Email ---"))
}
