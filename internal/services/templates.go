package services

// Notification templates. The organizer and confirmation bodies each
// come in an HTML and a plain-text variant rendered from the same
// bookingView, so the two carry an identical fact set.

const organizerHTMLTemplate = `<div style="font-family: Georgia, serif; max-width: 600px; margin: 0 auto; padding: 20px; background-color: #f8f9fa;">
  <div style="background: linear-gradient(135deg, #4a5568, #2d3748); color: white; padding: 30px; text-align: center; border-radius: 10px 10px 0 0;">
    <h1 style="margin: 0; font-size: 28px; font-weight: 300;">New Booking Request</h1>
  </div>

  <div style="background: white; padding: 30px; border-radius: 0 0 10px 10px; box-shadow: 0 4px 6px rgba(0,0,0,0.1);">
    <h2 style="color: #2d3748; border-bottom: 2px solid #667eea; padding-bottom: 10px;">Contact Information</h2>
    <table style="width: 100%; margin-bottom: 25px;">
      <tr><td style="padding: 8px 0; font-weight: bold; color: #4a5568;">Name:</td><td>{{.FullName}}</td></tr>
      <tr><td style="padding: 8px 0; font-weight: bold; color: #4a5568;">Email:</td><td><a href="mailto:{{.Email}}" style="color: #667eea;">{{.Email}}</a></td></tr>
      <tr><td style="padding: 8px 0; font-weight: bold; color: #4a5568;">Phone:</td><td><a href="tel:{{.Phone}}" style="color: #667eea;">{{.Phone}}</a></td></tr>
      <tr><td style="padding: 8px 0; font-weight: bold; color: #4a5568;">Organization:</td><td>{{.Organization}}</td></tr>
    </table>

    <h2 style="color: #2d3748; border-bottom: 2px solid #667eea; padding-bottom: 10px;">Event Details</h2>
    <table style="width: 100%; margin-bottom: 25px;">
      <tr><td style="padding: 8px 0; font-weight: bold; color: #4a5568;">Date:</td><td>{{.FormattedDate}}</td></tr>
      <tr><td style="padding: 8px 0; font-weight: bold; color: #4a5568;">Time:</td><td>{{.FormattedTime}}</td></tr>
      <tr><td style="padding: 8px 0; font-weight: bold; color: #4a5568;">Venue:</td><td>{{.Venue}}</td></tr>
      <tr><td style="padding: 8px 0; font-weight: bold; color: #4a5568;">Event Type:</td><td>{{.EventTypeDisplay}}</td></tr>
      {{if .ExpectedAttendance}}<tr><td style="padding: 8px 0; font-weight: bold; color: #4a5568;">Expected Attendance:</td><td>{{.ExpectedAttendance}}</td></tr>{{end}}
      {{if .Duration}}<tr><td style="padding: 8px 0; font-weight: bold; color: #4a5568;">Duration:</td><td>{{.Duration}}</td></tr>{{end}}
    </table>

    {{if .SpecialRequests}}
    <h2 style="color: #2d3748; border-bottom: 2px solid #667eea; padding-bottom: 10px;">Special Requests</h2>
    <div style="background: #f7fafc; padding: 15px; border-radius: 8px; margin-bottom: 25px; border-left: 4px solid #667eea;">
      <p style="margin: 0; line-height: 1.6;">{{.SpecialRequests}}</p>
    </div>
    {{end}}

    <div style="background: #e6fffa; padding: 15px; border-radius: 8px; border-left: 4px solid #38a169;">
      <p style="margin: 0; color: #2d3748;"><strong>Terms Agreement:</strong> Client has read and agreed to the performance agreement terms.</p>
    </div>

    <div style="text-align: center; margin-top: 30px; padding-top: 20px; border-top: 1px solid #e2e8f0;">
      <p style="color: #718096; margin: 0;">This booking request was submitted on {{.SubmittedAt}}</p>
    </div>
  </div>
</div>
`

const organizerTextTemplate = `NEW BOOKING REQUEST

Contact Information:
Name: {{.FullName}}
Email: {{.Email}}
Phone: {{.Phone}}
Organization: {{.Organization}}

Event Details:
Date: {{.FormattedDate}}
Time: {{.FormattedTime}}
Venue: {{.Venue}}
Event Type: {{.EventTypeDisplay}}
{{if .ExpectedAttendance}}Expected Attendance: {{.ExpectedAttendance}}
{{end}}{{if .Duration}}Duration: {{.Duration}}
{{end}}
{{if .SpecialRequests}}Special Requests:
{{.SpecialRequests}}

{{end}}Terms Agreement: Client has read and agreed to the performance agreement terms.

Submitted: {{.SubmittedAt}}
`

const confirmationHTMLTemplate = `<div style="font-family: Georgia, serif; max-width: 500px; margin: 0 auto; padding: 20px;">
  <h2 style="color: #2d3748;">Thank You for Your Booking Request!</h2>
  <p>Dear {{.FirstName}},</p>
  <p>We have received your booking request for <strong>{{.Organization}}</strong> on <strong>{{.FormattedDate}}</strong>.</p>
  <p>We will review your request and contact you within 24 hours to confirm availability and discuss next steps.</p>
  <p>If you have any urgent questions, please feel free to reply to this email.</p>
  <p>Blessings,<br>{{.AppName}} Team</p>
</div>
`

const confirmationTextTemplate = `Thank You for Your Booking Request!

Dear {{.FirstName}},

We have received your booking request for {{.Organization}} on {{.FormattedDate}}.

We will review your request and contact you within 24 hours to confirm availability and discuss next steps.

If you have any urgent questions, please feel free to reply to this email.

Blessings,
{{.AppName}} Team
`
