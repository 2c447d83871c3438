package services

import (
	"github.com/go-playground/validator/v10"

	"github.com/elidotco/bookingformspace/internal/models"
)

var bookingValidate = validator.New()

// ValidateBooking checks a submitted booking request. It is pure and
// deliberately thin: first the required-field sweep over the nine
// identity/contact/event fields, then the terms agreement. Nothing
// semantic (email format, future dates, attendance bounds) is checked.
func ValidateBooking(b *models.BookingRequest) error {
	if err := bookingValidate.Struct(b); err != nil {
		return models.ErrMissingFields
	}
	if !b.AgreeTerms {
		return models.ErrTermsNotAccepted
	}
	return nil
}
