package email

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

type stubSender struct {
	id    string
	err   error
	calls int
}

func (s *stubSender) Send(ctx context.Context, msg Message) (string, error) {
	s.calls++
	if s.err != nil {
		return "", s.err
	}
	return s.id, nil
}

func TestCompositeEmailSender_NoSenders(t *testing.T) {
	cs := NewCompositeEmailSender()
	_, err := cs.Send(context.Background(), Message{To: "a@example.com"})
	assert.Error(t, err)
}

func TestCompositeEmailSender_ReturnsPrimaryID(t *testing.T) {
	primary := &stubSender{id: "primary-id"}
	secondary := &stubSender{id: "secondary-id"}
	cs := NewCompositeEmailSender(primary)
	cs.AddSender(secondary)

	id, err := cs.Send(context.Background(), Message{To: "a@example.com"})
	assert.NoError(t, err)
	assert.Equal(t, "primary-id", id)
	assert.Equal(t, 1, primary.calls)
	assert.Equal(t, 1, secondary.calls)
}

func TestCompositeEmailSender_AggregatesErrors(t *testing.T) {
	primary := &stubSender{err: errors.New("smtp down")}
	secondary := &stubSender{err: errors.New("disk full")}
	cs := NewCompositeEmailSender(primary, secondary)

	_, err := cs.Send(context.Background(), Message{To: "a@example.com"})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "smtp down")
	assert.Contains(t, err.Error(), "disk full")
}

func TestCompositeEmailSender_SecondaryFailureStillFailsOverall(t *testing.T) {
	primary := &stubSender{id: "primary-id"}
	secondary := &stubSender{err: errors.New("disk full")}
	cs := NewCompositeEmailSender(primary, secondary)

	_, err := cs.Send(context.Background(), Message{To: "a@example.com"})
	assert.Error(t, err)
	assert.Equal(t, 1, primary.calls)
}

func TestCompositeEmailSender_AddNilSenderIgnored(t *testing.T) {
	primary := &stubSender{id: "primary-id"}
	cs := NewCompositeEmailSender(primary)
	cs.AddSender(nil)

	id, err := cs.Send(context.Background(), Message{To: "a@example.com"})
	assert.NoError(t, err)
	assert.Equal(t, "primary-id", id)
}

func TestMessageKind(t *testing.T) {
	assert.Equal(t, KindBookingNotice, MessageKind("New Booking Request: Grace Chapel - Friday, January 1, 2027"))
	assert.Equal(t, KindBookingConfirmation, MessageKind("Booking Request Received - Daughters Of Glorious Jesus"))
	assert.Equal(t, KindUnknown, MessageKind("Test Email - Setup"))
}
