package notifier

import (
	htmltemplate "html/template"
	texttemplate "text/template"
)

type mailData struct {
	Name             string
	ConfirmationCode string
	CourtName        string
	FacilityName     string
	Date             string
	TimeRange        string
	Duration         int
	Notes            string
	Reason           string
}

var confirmationHTML = htmltemplate.Must(htmltemplate.New("confirmation").Parse(`<!DOCTYPE html>
<html>
<head>
<style>
  body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
  .container { max-width: 600px; margin: 0 auto; padding: 20px; }
  .header { background: #2c5282; color: white; padding: 20px; text-align: center; border-radius: 8px 8px 0 0; }
  .content { background: #f7fafc; padding: 30px; border-radius: 0 0 8px 8px; }
  .detail-row { margin: 10px 0; padding: 10px; background: white; border-radius: 4px; }
  .label { font-weight: bold; color: #2c5282; }
  .confirmation-code { background: #2c5282; color: white; padding: 15px; text-align: center; font-size: 24px; font-weight: bold; border-radius: 4px; margin: 20px 0; letter-spacing: 2px; }
  .footer { margin-top: 20px; text-align: center; font-size: 12px; color: #666; }
</style>
</head>
<body>
<div class="container">
  <div class="header"><h1>Booking Confirmed!</h1></div>
  <div class="content">
    <p>Hi {{.Name}},</p>
    <p>Your court reservation has been confirmed. Here are your booking details:</p>
    <div class="confirmation-code">{{.ConfirmationCode}}</div>
    <div class="detail-row"><span class="label">Court:</span> {{.CourtName}}</div>
    <div class="detail-row"><span class="label">Date:</span> {{.Date}}</div>
    <div class="detail-row"><span class="label">Time:</span> {{.TimeRange}}</div>
    <div class="detail-row"><span class="label">Duration:</span> {{.Duration}} minutes</div>
    {{if .FacilityName}}<div class="detail-row"><span class="label">Location:</span> {{.FacilityName}}</div>{{end}}
    {{if .Notes}}<div class="detail-row"><span class="label">Notes:</span> {{.Notes}}</div>{{end}}
    <p style="margin-top: 30px;">See you on the court!</p>
    <div class="footer">
      <p>Need to cancel? Log in to your account to manage your bookings.</p>
      <p style="margin-top: 10px; color: #999;">This is an automated message. Please do not reply to this email.</p>
    </div>
  </div>
</div>
</body>
</html>`))

var confirmationText = texttemplate.Must(texttemplate.New("confirmation").Parse(`Booking Confirmed!

Hi {{.Name}},

Your court reservation has been confirmed.

Confirmation Code: {{.ConfirmationCode}}

Details:
- Court: {{.CourtName}}
- Date: {{.Date}}
- Time: {{.TimeRange}}
- Duration: {{.Duration}} minutes
{{if .FacilityName}}- Location: {{.FacilityName}}
{{end}}{{if .Notes}}- Notes: {{.Notes}}
{{end}}
See you on the court!

---
Need to cancel? Log in to your account to manage your bookings.`))

var cancellationHTML = htmltemplate.Must(htmltemplate.New("cancellation").Parse(`<!DOCTYPE html>
<html>
<head>
<style>
  body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
  .container { max-width: 600px; margin: 0 auto; padding: 20px; }
  .header { background: #c53030; color: white; padding: 20px; text-align: center; border-radius: 8px 8px 0 0; }
  .content { background: #f7fafc; padding: 30px; border-radius: 0 0 8px 8px; }
  .detail-row { margin: 10px 0; padding: 10px; background: white; border-radius: 4px; }
  .label { font-weight: bold; color: #c53030; }
  .alert { background: #fed7d7; border-left: 4px solid #c53030; padding: 15px; margin: 20px 0; border-radius: 4px; }
  .footer { margin-top: 20px; text-align: center; font-size: 12px; color: #666; }
</style>
</head>
<body>
<div class="container">
  <div class="header"><h1>Booking Cancelled</h1></div>
  <div class="content">
    <p>Hi {{.Name}},</p>
    <div class="alert">Your court reservation has been cancelled.</div>
    <p>Cancelled booking details:</p>
    <div class="detail-row"><span class="label">Confirmation Code:</span> {{.ConfirmationCode}}</div>
    <div class="detail-row"><span class="label">Court:</span> {{.CourtName}}</div>
    <div class="detail-row"><span class="label">Date:</span> {{.Date}}</div>
    <div class="detail-row"><span class="label">Time:</span> {{.TimeRange}}</div>
    {{if .Reason}}<div class="detail-row"><span class="label">Reason:</span> {{.Reason}}</div>{{end}}
    <p style="margin-top: 30px;">Want to book again? Log in to browse available court times.</p>
    <div class="footer">
      <p>Questions? Contact us for assistance.</p>
      <p style="margin-top: 10px; color: #999;">This is an automated message. Please do not reply to this email.</p>
    </div>
  </div>
</div>
</body>
</html>`))

var cancellationText = texttemplate.Must(texttemplate.New("cancellation").Parse(`Booking Cancelled

Hi {{.Name}},

Your court reservation has been cancelled.

Details:
- Confirmation Code: {{.ConfirmationCode}}
- Court: {{.CourtName}}
- Date: {{.Date}}
- Time: {{.TimeRange}}
{{if .Reason}}- Reason: {{.Reason}}
{{end}}
Want to book again? Log in to browse available court times.

---
Questions? Contact us for assistance.`))

var testHTML = htmltemplate.Must(htmltemplate.New("test").Parse(`<p>Hi {{.Name}},</p>
<p>This is a test email from the court reservation service. If you can read this, outbound mail works.</p>`))

var testText = texttemplate.Must(texttemplate.New("test").Parse(`Hi {{.Name}},

This is a test email from the court reservation service. If you can read this, outbound mail works.`))
