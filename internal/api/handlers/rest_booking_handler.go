package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/elidotco/bookingformspace/internal/models"
	"github.com/elidotco/bookingformspace/internal/services"
)

// RestBookingHandler handles REST requests for booking submissions.
type RestBookingHandler struct {
	bookingService services.IBookingService
}

// NewRestBookingHandler creates a new RestBookingHandler.
func NewRestBookingHandler(bookingService services.IBookingService) *RestBookingHandler {
	return &RestBookingHandler{
		bookingService: bookingService,
	}
}

// SubmitBooking handles POST /api/booking
func (h *RestBookingHandler) SubmitBooking(c *gin.Context) {
	var req models.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		// A body that doesn't bind carries no usable fields; report it
		// the same way as an empty submission.
		c.JSON(http.StatusBadRequest, gin.H{"message": models.ErrMissingFields.Error()})
		return
	}

	outcome := h.bookingService.SubmitBooking(c.Request.Context(), &req)

	switch outcome.State {
	case services.StateRejected:
		c.JSON(http.StatusBadRequest, gin.H{"message": outcome.Reason.Error()})
	case services.StateCompleted:
		c.JSON(http.StatusOK, gin.H{
			"message":   "Booking request sent successfully",
			"messageId": outcome.MessageID,
		})
	default:
		// StateFailed and StatePartiallyFailed both surface as a
		// generic delivery failure carrying the underlying error text.
		_ = c.Error(outcome.Err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Failed to send booking request",
			"error":   outcome.Err.Error(),
		})
	}
}
