package handlers_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/elidotco/bookingformspace/internal/models"
	"github.com/elidotco/bookingformspace/internal/services"
)

// --- Mocks ---

// MockBookingService
type MockBookingService struct {
	mock.Mock
}

func (m *MockBookingService) SubmitBooking(ctx context.Context, b *models.BookingRequest) services.SubmissionOutcome {
	args := m.Called(ctx, b)
	return args.Get(0).(services.SubmissionOutcome)
}
