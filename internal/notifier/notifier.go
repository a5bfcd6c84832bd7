package notifier

import (
	"log/slog"

	"courtbooker/internal/config"
	"courtbooker/internal/models"
)

// Notifier delivers booking emails. Implementations return an error instead
// of panicking; callers decide whether delivery failures matter (they are
// fire-and-forget everywhere in this service).
type Notifier interface {
	SendBookingConfirmation(reservation *models.Reservation, user *models.User, court *models.Court) error
	SendCancellationNotice(reservation *models.Reservation, user *models.User, court *models.Court) error
	SendTest(to string) error
}

// New picks the implementation from config: SMTP when credentials are set,
// otherwise a disabled notifier that only logs skipped dispatches.
func New(cfg config.SMTP, log *slog.Logger) Notifier {
	if cfg.User == "" || cfg.Password == "" {
		log.Warn("no SMTP credentials configured, email notifications disabled")
		return &Disabled{log: log}
	}

	return NewSMTP(cfg, log)
}

// Disabled is used when SMTP is not configured.
type Disabled struct {
	log *slog.Logger
}

func (d *Disabled) SendBookingConfirmation(_ *models.Reservation, user *models.User, _ *models.Court) error {
	d.log.Info("email skipped (not configured): booking confirmation", slog.String("to", user.Email))
	return nil
}

func (d *Disabled) SendCancellationNotice(_ *models.Reservation, user *models.User, _ *models.Court) error {
	d.log.Info("email skipped (not configured): cancellation notice", slog.String("to", user.Email))
	return nil
}

func (d *Disabled) SendTest(to string) error {
	d.log.Info("email skipped (not configured): test email", slog.String("to", to))
	return nil
}
