package models

import "errors"

// Rejection reasons for a booking submission. These map 1:1 onto the
// 400-level responses of the booking endpoint.
var (
	ErrMissingFields    = errors.New("Missing required fields")
	ErrTermsNotAccepted = errors.New("Terms agreement is required")
)

// EventType enumerates the kinds of events the group can be booked for.
type EventType string

const (
	EventChurchService EventType = "church-service"
	EventRevival       EventType = "revival"
	EventConcert       EventType = "concert"
	EventConference    EventType = "conference"
	EventWedding       EventType = "wedding"
	EventFuneral       EventType = "funeral"
	EventOther         EventType = "other"
)

// EventTypes lists the selectable event types in the order the form
// presents them.
var EventTypes = []EventType{
	EventChurchService,
	EventRevival,
	EventConcert,
	EventConference,
	EventWedding,
	EventFuneral,
	EventOther,
}

// Label returns the human-readable name shown in the form dropdown.
func (e EventType) Label() string {
	switch e {
	case EventChurchService:
		return "Church Service"
	case EventRevival:
		return "Revival/Crusade"
	case EventConcert:
		return "Concert"
	case EventConference:
		return "Conference"
	case EventWedding:
		return "Wedding"
	case EventFuneral:
		return "Funeral/Memorial"
	case EventOther:
		return "Other"
	}
	return string(e)
}

// DurationBand is one selectable performance-duration option: the form
// value submitted with the booking and the label shown to the visitor.
type DurationBand struct {
	Value string
	Label string
}

// PerformanceDurations lists the selectable duration bands, in form order.
var PerformanceDurations = []DurationBand{
	{Value: "15-30min", Label: "15-30 minutes"},
	{Value: "30-45min", Label: "30-45 minutes"},
	{Value: "45-60min", Label: "45-60 minutes"},
	{Value: "60-90min", Label: "60-90 minutes"},
	{Value: "full-concert", Label: "Full Concert (90+ minutes)"},
}

// BookingRequest is a single booking form submission. It is ephemeral:
// validated, turned into two notification emails, and discarded.
//
// ExpectedAttendance arrives as a numeric string from the form and is
// carried verbatim; no bound is enforced on it, matching the rest of
// the deliberately thin validation (presence of required fields plus
// terms agreement, nothing semantic).
type BookingRequest struct {
	FirstName    string `json:"firstName" validate:"required"`
	LastName     string `json:"lastName" validate:"required"`
	Email        string `json:"email" validate:"required"`
	Phone        string `json:"phone" validate:"required"`
	Organization string `json:"organization" validate:"required"`
	EventDate    string `json:"eventDate" validate:"required"`
	EventTime    string `json:"eventTime" validate:"required"`
	Venue        string `json:"venue" validate:"required"`
	EventType    string `json:"eventType" validate:"required"`

	ExpectedAttendance  string `json:"expectedAttendance,omitempty"`
	PerformanceDuration string `json:"performanceDuration,omitempty"`
	SpecialRequests     string `json:"specialRequests,omitempty"`

	AgreeTerms bool `json:"agreeTerms"`
}

// FullName returns the submitter's display name.
func (b *BookingRequest) FullName() string {
	return b.FirstName + " " + b.LastName
}
