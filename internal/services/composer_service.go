package services

import (
	"fmt"
	htmltemplate "html/template"
	"strings"
	texttemplate "text/template"
	"time"
	"unicode"

	"github.com/elidotco/bookingformspace/internal/config"
	"github.com/elidotco/bookingformspace/internal/email"
	"github.com/elidotco/bookingformspace/internal/models"
)

// INotificationComposer defines the interface for turning an accepted
// booking into the two outbound notification messages.
type INotificationComposer interface {
	Compose(b *models.BookingRequest) (organizer, confirmation email.Message, err error)
}

// notificationComposer implements INotificationComposer. Side-effect
// free apart from reading the current time for the "submitted on"
// footer of the organizer notice.
type notificationComposer struct {
	cfg *config.Config

	organizerHTML    *htmltemplate.Template
	confirmationHTML *htmltemplate.Template
	organizerText    *texttemplate.Template
	confirmationText *texttemplate.Template

	now func() time.Time
}

// NewNotificationComposer creates a new NotificationComposer with all
// templates parsed up front.
func NewNotificationComposer(cfg *config.Config) INotificationComposer {
	return &notificationComposer{
		cfg:              cfg,
		organizerHTML:    htmltemplate.Must(htmltemplate.New("organizer_html").Parse(organizerHTMLTemplate)),
		confirmationHTML: htmltemplate.Must(htmltemplate.New("confirmation_html").Parse(confirmationHTMLTemplate)),
		organizerText:    texttemplate.Must(texttemplate.New("organizer_text").Parse(organizerTextTemplate)),
		confirmationText: texttemplate.Must(texttemplate.New("confirmation_text").Parse(confirmationTextTemplate)),
		now:              time.Now,
	}
}

// bookingView is the shared view model rendered into every template.
// Deriving both the HTML and the plain-text body from the same view
// keeps the two representations carrying the same facts.
type bookingView struct {
	FirstName          string
	FullName           string
	Email              string
	Phone              string
	Organization       string
	FormattedDate      string
	FormattedTime      string
	Venue              string
	EventTypeDisplay   string
	ExpectedAttendance string
	Duration           string
	SpecialRequests    string
	SubmittedAt        string
	AppName            string
}

// FormatEventDate renders a calendar date ("2027-01-01") as a long
// human-readable date ("Friday, January 1, 2027").
func FormatEventDate(date string) (string, error) {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return "", fmt.Errorf("invalid event date %q: %w", date, err)
	}
	return t.Format("Monday, January 2, 2006"), nil
}

// FormatEventTime renders a time of day on a 12-hour clock with an
// AM/PM marker and zero-padded minutes ("14:00" -> "2:00 PM").
func FormatEventTime(clock string) (string, error) {
	for _, layout := range []string{"15:04", "15:04:05", "3:04 PM"} {
		if t, err := time.Parse(layout, clock); err == nil {
			return t.Format("3:04 PM"), nil
		}
	}
	return "", fmt.Errorf("invalid event time %q", clock)
}

// FormatEventType turns an event type value into display form:
// hyphens become spaces and the first letter is capitalized
// ("church-service" -> "Church service").
func FormatEventType(eventType string) string {
	display := strings.ReplaceAll(eventType, "-", " ")
	if display == "" {
		return display
	}
	runes := []rune(display)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}

// Compose builds the organizer notice and the submitter confirmation
// for a valid booking. The organizer notice goes to the configured
// booking mailbox with Reply-To set to the submitter; the confirmation
// goes to the submitter from the configured sending identity.
func (c *notificationComposer) Compose(b *models.BookingRequest) (email.Message, email.Message, error) {
	formattedDate, err := FormatEventDate(b.EventDate)
	if err != nil {
		return email.Message{}, email.Message{}, err
	}
	formattedTime, err := FormatEventTime(b.EventTime)
	if err != nil {
		return email.Message{}, email.Message{}, err
	}

	view := bookingView{
		FirstName:          b.FirstName,
		FullName:           b.FullName(),
		Email:              b.Email,
		Phone:              b.Phone,
		Organization:       b.Organization,
		FormattedDate:      formattedDate,
		FormattedTime:      formattedTime,
		Venue:              b.Venue,
		EventTypeDisplay:   FormatEventType(b.EventType),
		ExpectedAttendance: b.ExpectedAttendance,
		Duration:           b.PerformanceDuration,
		SpecialRequests:    b.SpecialRequests,
		SubmittedAt:        c.now().Format("January 2, 2006 at 3:04 PM MST"),
		AppName:            c.cfg.AppName,
	}

	organizerHTML, err := renderHTML(c.organizerHTML, view)
	if err != nil {
		return email.Message{}, email.Message{}, err
	}
	organizerText, err := renderText(c.organizerText, view)
	if err != nil {
		return email.Message{}, email.Message{}, err
	}
	confirmationHTML, err := renderHTML(c.confirmationHTML, view)
	if err != nil {
		return email.Message{}, email.Message{}, err
	}
	confirmationText, err := renderText(c.confirmationText, view)
	if err != nil {
		return email.Message{}, email.Message{}, err
	}

	organizer := email.Message{
		From:    fmt.Sprintf("\"%s\" <%s>", b.FullName(), c.cfg.SmtpFromAddress),
		To:      c.cfg.BookingEmail,
		ReplyTo: b.Email,
		Subject: fmt.Sprintf("New Booking Request: %s - %s", b.Organization, formattedDate),
		Text:    organizerText,
		HTML:    organizerHTML,
	}

	confirmation := email.Message{
		From:    c.cfg.SmtpFromAddress,
		To:      b.Email,
		Subject: fmt.Sprintf("Booking Request Received - %s", c.cfg.AppName),
		Text:    confirmationText,
		HTML:    confirmationHTML,
	}

	return organizer, confirmation, nil
}

func renderHTML(tmpl *htmltemplate.Template, view bookingView) (string, error) {
	var sb strings.Builder
	if err := tmpl.Execute(&sb, view); err != nil {
		return "", fmt.Errorf("rendering %s: %w", tmpl.Name(), err)
	}
	return sb.String(), nil
}

func renderText(tmpl *texttemplate.Template, view bookingView) (string, error) {
	var sb strings.Builder
	if err := tmpl.Execute(&sb, view); err != nil {
		return "", fmt.Errorf("rendering %s: %w", tmpl.Name(), err)
	}
	return sb.String(), nil
}
