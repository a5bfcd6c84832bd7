package notifier

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"

	"courtbooker/internal/config"
	"courtbooker/internal/metrics"
	"courtbooker/internal/models"

	"gopkg.in/gomail.v2"
)

// SMTP sends mail through an explicitly constructed dialer. The dialer is
// owned by this struct, not shared module state; gomail dials per send, so
// there is no long-lived connection to manage.
type SMTP struct {
	dialer    *gomail.Dialer
	fromName  string
	fromEmail string
	log       *slog.Logger
}

func NewSMTP(cfg config.SMTP, log *slog.Logger) *SMTP {
	fromEmail := cfg.FromEmail
	if fromEmail == "" {
		fromEmail = cfg.User
	}

	return &SMTP{
		dialer:    gomail.NewDialer(cfg.Host, cfg.Port, cfg.User, cfg.Password),
		fromName:  cfg.FromName,
		fromEmail: fromEmail,
		log:       log,
	}
}

func (s *SMTP) SendBookingConfirmation(reservation *models.Reservation, user *models.User, court *models.Court) error {
	subject := fmt.Sprintf("Booking Confirmed - %s on %s", court.Name, reservation.StartTime.Format("Jan 2, 2006"))

	data := mailData{
		Name:             user.Name,
		ConfirmationCode: reservation.ConfirmationCode,
		CourtName:        court.Name,
		FacilityName:     court.FacilityName,
		Date:             reservation.StartTime.Format("Monday, January 2, 2006"),
		TimeRange:        fmt.Sprintf("%s - %s", reservation.StartTime.Format("15:04"), reservation.EndTime.Format("15:04")),
		Duration:         reservation.DurationMinutes,
		Notes:            reservation.Notes,
	}

	return s.send(user.Email, subject, confirmationHTML, confirmationText, data)
}

func (s *SMTP) SendCancellationNotice(reservation *models.Reservation, user *models.User, court *models.Court) error {
	subject := fmt.Sprintf("Booking Cancelled - %s on %s", court.Name, reservation.StartTime.Format("Jan 2, 2006"))

	data := mailData{
		Name:             user.Name,
		ConfirmationCode: reservation.ConfirmationCode,
		CourtName:        court.Name,
		FacilityName:     court.FacilityName,
		Date:             reservation.StartTime.Format("Monday, January 2, 2006"),
		TimeRange:        fmt.Sprintf("%s - %s", reservation.StartTime.Format("15:04"), reservation.EndTime.Format("15:04")),
		Reason:           reservation.CancellationReason,
	}

	return s.send(user.Email, subject, cancellationHTML, cancellationText, data)
}

func (s *SMTP) SendTest(to string) error {
	data := mailData{Name: "there"}
	return s.send(to, "Court Reservation - Test Email", testHTML, testText, data)
}

type bodyTemplate interface {
	Execute(w io.Writer, data any) error
}

func (s *SMTP) send(to, subject string, htmlTmpl, textTmpl bodyTemplate, data mailData) error {
	var htmlBody, textBody bytes.Buffer
	if err := htmlTmpl.Execute(&htmlBody, data); err != nil {
		return fmt.Errorf("failed to render email body: %w", err)
	}
	if err := textTmpl.Execute(&textBody, data); err != nil {
		return fmt.Errorf("failed to render email text: %w", err)
	}

	m := gomail.NewMessage()
	m.SetAddressHeader("From", s.fromEmail, s.fromName)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", textBody.String())
	m.AddAlternative("text/html", htmlBody.String())

	if err := s.dialer.DialAndSend(m); err != nil {
		metrics.IncEmail("failure")
		return fmt.Errorf("failed to send email: %w", err)
	}

	metrics.IncEmail("success")
	s.log.Info("email sent", slog.String("to", to), slog.String("subject", subject))

	return nil
}
