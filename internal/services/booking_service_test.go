package services

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/elidotco/bookingformspace/internal/email"
	"github.com/elidotco/bookingformspace/internal/models"
)

// fakeSender records every delivery attempt and can be told to fail on
// specific attempts, to drive the partial-failure paths.
type fakeSender struct {
	sent    []email.Message
	failOn  map[int]error // 1-based attempt number -> error
	nextID  int
	attempt int
}

func newFakeSender() *fakeSender {
	return &fakeSender{failOn: make(map[int]error)}
}

func (f *fakeSender) Send(ctx context.Context, msg email.Message) (string, error) {
	f.attempt++
	if err, ok := f.failOn[f.attempt]; ok {
		return "", err
	}
	f.sent = append(f.sent, msg)
	f.nextID++
	return fmt.Sprintf("id-%d", f.nextID), nil
}

func newTestBookingService(sender email.Sender) IBookingService {
	cfg := composerTestConfig()
	return NewBookingService(cfg, newTestComposer(), sender)
}

func TestSubmitBooking_RejectedMissingFields_NoSends(t *testing.T) {
	sender := newFakeSender()
	svc := newTestBookingService(sender)

	b := validBooking()
	b.Venue = ""

	outcome := svc.SubmitBooking(context.Background(), b)
	assert.Equal(t, StateRejected, outcome.State)
	assert.ErrorIs(t, outcome.Reason, models.ErrMissingFields)
	assert.Empty(t, outcome.MessageID)
	assert.Zero(t, sender.attempt, "gateway must never be called for rejected submissions")
}

func TestSubmitBooking_RejectedTermsNotAccepted(t *testing.T) {
	sender := newFakeSender()
	svc := newTestBookingService(sender)

	b := validBooking()
	b.AgreeTerms = false

	outcome := svc.SubmitBooking(context.Background(), b)
	assert.Equal(t, StateRejected, outcome.State)
	assert.ErrorIs(t, outcome.Reason, models.ErrTermsNotAccepted)
	assert.Zero(t, sender.attempt)
}

func TestSubmitBooking_Completed(t *testing.T) {
	sender := newFakeSender()
	svc := newTestBookingService(sender)

	outcome := svc.SubmitBooking(context.Background(), validBooking())
	assert.Equal(t, StateCompleted, outcome.State)
	assert.Equal(t, "id-1", outcome.MessageID, "outcome carries the organizer delivery id")
	assert.NoError(t, outcome.Err)

	// Organizer notice first, confirmation second.
	require.Len(t, sender.sent, 2)
	assert.Equal(t, "bookings@example.com", sender.sent[0].To)
	assert.Equal(t, "ama.mensah@example.com", sender.sent[1].To)
}

func TestSubmitBooking_OrganizerSendFails_ConfirmationNeverAttempted(t *testing.T) {
	sender := newFakeSender()
	sender.failOn[1] = errors.New("smtp error: relay rejected")
	svc := newTestBookingService(sender)

	outcome := svc.SubmitBooking(context.Background(), validBooking())
	assert.Equal(t, StateFailed, outcome.State)
	assert.Empty(t, outcome.MessageID)
	assert.ErrorContains(t, outcome.Err, "relay rejected")
	assert.Equal(t, 1, sender.attempt, "confirmation must not be attempted after organizer failure")
	assert.Empty(t, sender.sent)
}

func TestSubmitBooking_ConfirmationFails_PartiallyFailed(t *testing.T) {
	sender := newFakeSender()
	sender.failOn[2] = errors.New("smtp error: mailbox unavailable")
	svc := newTestBookingService(sender)

	outcome := svc.SubmitBooking(context.Background(), validBooking())
	assert.Equal(t, StatePartiallyFailed, outcome.State)
	assert.Equal(t, "id-1", outcome.MessageID, "organizer delivery id is still reported")
	assert.ErrorContains(t, outcome.Err, "mailbox unavailable")

	// The asymmetry: the outcome is a failure, yet exactly one email
	// (the organizer notice) was actually delivered.
	require.Len(t, sender.sent, 1)
	assert.Equal(t, "bookings@example.com", sender.sent[0].To)
}

func TestSubmitBooking_ComposeFailure(t *testing.T) {
	sender := newFakeSender()
	svc := newTestBookingService(sender)

	b := validBooking()
	b.EventDate = "someday"

	outcome := svc.SubmitBooking(context.Background(), b)
	assert.Equal(t, StateFailed, outcome.State)
	assert.ErrorContains(t, outcome.Err, "invalid event date")
	assert.Zero(t, sender.attempt)
}

func TestSubmitBooking_NoDeduplication(t *testing.T) {
	sender := newFakeSender()
	svc := newTestBookingService(sender)

	first := svc.SubmitBooking(context.Background(), validBooking())
	second := svc.SubmitBooking(context.Background(), validBooking())

	assert.Equal(t, StateCompleted, first.State)
	assert.Equal(t, StateCompleted, second.State)
	assert.NotEqual(t, first.MessageID, second.MessageID)
	assert.Len(t, sender.sent, 4, "identical submissions produce independent delivery attempts")
}
