package services

import (
	"context"
	"fmt"
	"log"

	"github.com/elidotco/bookingformspace/internal/config"
	"github.com/elidotco/bookingformspace/internal/email"
	"github.com/elidotco/bookingformspace/internal/models"
)

// SubmissionState is the terminal state of one booking submission.
type SubmissionState string

const (
	// StateRejected: validation failed, no emails were attempted.
	StateRejected SubmissionState = "rejected"
	// StateFailed: composition or the organizer send failed; the
	// confirmation was never attempted.
	StateFailed SubmissionState = "failed"
	// StatePartiallyFailed: the organizer notice was delivered but the
	// submitter confirmation failed. Still reported as an overall
	// failure to the caller.
	StatePartiallyFailed SubmissionState = "partially_failed"
	// StateCompleted: both emails were delivered.
	StateCompleted SubmissionState = "completed"
)

// SubmissionOutcome is the tagged result of handling one booking
// submission. MessageID carries the organizer delivery identifier
// whenever the organizer notice went out (Completed and
// PartiallyFailed). Reason is set for Rejected, Err for the failure
// states.
type SubmissionOutcome struct {
	State     SubmissionState
	MessageID string
	Reason    error
	Err       error
}

// IBookingService defines the interface for booking submission handling.
type IBookingService interface {
	SubmitBooking(ctx context.Context, b *models.BookingRequest) SubmissionOutcome
}

// bookingService implements IBookingService. Per submission it runs
// validate -> compose -> send organizer notice -> send confirmation,
// strictly sequential, one attempt each, no retries or queueing.
type bookingService struct {
	cfg      *config.Config
	composer INotificationComposer
	sender   email.Sender
}

// NewBookingService creates a new BookingService.
func NewBookingService(cfg *config.Config, composer INotificationComposer, sender email.Sender) IBookingService {
	return &bookingService{cfg: cfg, composer: composer, sender: sender}
}

// SubmitBooking handles one booking submission end to end and returns
// its terminal state. No gateway call is made for rejected
// submissions; the confirmation send is only attempted after the
// organizer send succeeded.
func (s *bookingService) SubmitBooking(ctx context.Context, b *models.BookingRequest) SubmissionOutcome {
	if err := ValidateBooking(b); err != nil {
		return SubmissionOutcome{State: StateRejected, Reason: err}
	}

	organizer, confirmation, err := s.composer.Compose(b)
	if err != nil {
		log.Printf("Failed to compose booking notifications for %s: %v", b.Email, err)
		return SubmissionOutcome{State: StateFailed, Err: fmt.Errorf("composing notifications: %w", err)}
	}

	messageID, err := s.sender.Send(ctx, organizer)
	if err != nil {
		log.Printf("Failed to send booking notice to %s: %v", organizer.To, err)
		return SubmissionOutcome{State: StateFailed, Err: err}
	}

	if _, err := s.sender.Send(ctx, confirmation); err != nil {
		// The organizer was notified, yet the overall result is
		// reported as a failure.
		log.Printf("Booking notice %s delivered but confirmation to %s failed: %v", messageID, confirmation.To, err)
		return SubmissionOutcome{State: StatePartiallyFailed, MessageID: messageID, Err: err}
	}

	log.Printf("Booking request from %s processed, notice delivered as %s", b.Email, messageID)
	return SubmissionOutcome{State: StateCompleted, MessageID: messageID}
}
