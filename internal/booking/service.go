package booking

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"courtbooker/internal/lib/logger/sl"
	"courtbooker/internal/lib/random"
	"courtbooker/internal/metrics"
	"courtbooker/internal/models"
	"courtbooker/internal/notifier"
	"courtbooker/internal/storage"
)

// ErrAlreadyCancelled rejects a second cancel; the transition is terminal.
var ErrAlreadyCancelled = errors.New("reservation is already cancelled")

// ErrNotOwner is returned when a non-admin touches someone else's
// reservation.
var ErrNotOwner = errors.New("you can only manage your own reservations")

// ConflictError carries the overlapping interval when it is known, for a
// readable 409 message.
type ConflictError struct {
	Start time.Time
	End   time.Time
}

func (e *ConflictError) Error() string {
	if e.Start.IsZero() {
		return "court is already booked at the requested time"
	}
	return fmt.Sprintf("court is already booked from %s to %s",
		e.Start.Format("15:04"), e.End.Format("15:04"))
}

const codeAttempts = 3

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=Storage
type Storage interface {
	ActiveCourtByID(ctx context.Context, id int64) (*models.Court, error)
	CourtByID(ctx context.Context, id int64) (*models.Court, error)
	HasConflict(ctx context.Context, courtID int64, start, end time.Time) (bool, error)
	ConflictingReservation(ctx context.Context, courtID int64, start, end time.Time) (*models.Reservation, error)
	CountActiveReservations(ctx context.Context, userID int64) (int, error)
	CreateReservation(ctx context.Context, r *models.Reservation) error
	ReservationByID(ctx context.Context, id int64) (*models.Reservation, error)
	CancelReservation(ctx context.Context, id int64, reason string) error
}

// Service orchestrates the reservation lifecycle: rules, conflict check,
// persistence, notification dispatch.
type Service struct {
	storage              Storage
	notifier             notifier.Notifier
	log                  *slog.Logger
	maxActive            int
	minCancellationHours int
}

func NewService(st Storage, n notifier.Notifier, log *slog.Logger, maxActive, minCancellationHours int) *Service {
	if maxActive <= 0 {
		maxActive = 5
	}
	if minCancellationHours <= 0 {
		minCancellationHours = 2
	}
	return &Service{
		storage:              st,
		notifier:             n,
		log:                  log,
		maxActive:            maxActive,
		minCancellationHours: minCancellationHours,
	}
}

type CreateRequest struct {
	CourtID   int64
	Date      string // YYYY-MM-DD
	StartTime string // HH:MM
	Duration  int    // minutes
	Notes     string
}

// Create runs the booking pipeline: rule validation, advisory conflict
// check, quota check, persist with the authoritative in-tx conflict recheck,
// then a fire-and-forget confirmation email.
func (s *Service) Create(ctx context.Context, user *models.User, req CreateRequest) (*models.Reservation, error) {
	start, err := time.ParseInLocation("2006-01-02 15:04", req.Date+" "+req.StartTime, time.Local)
	if err != nil {
		return nil, &RuleViolation{Message: "invalid date or start time"}
	}
	end := start.Add(time.Duration(req.Duration) * time.Minute)
	now := time.Now()

	// Past-time is checked before the court lookup so that an expired slot
	// on an unknown court still reads as a rule rejection.
	if err := ValidateStart(start, now); err != nil {
		return nil, err
	}

	court, err := s.storage.ActiveCourtByID(ctx, req.CourtID)
	if err != nil {
		return nil, err
	}

	if err := Validate(court, start, end, req.Duration, now); err != nil {
		return nil, err
	}

	hasConflict, err := s.storage.HasConflict(ctx, court.ID, start, end)
	if err != nil {
		return nil, err
	}
	if hasConflict {
		metrics.IncBookingConflict()
		return nil, s.conflictError(ctx, court.ID, start, end)
	}

	active, err := s.storage.CountActiveReservations(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	if active >= s.maxActive {
		return nil, violationf("you cannot have more than %d active reservations", s.maxActive)
	}

	reservation := &models.Reservation{
		UserID:          user.ID,
		CourtID:         court.ID,
		FacilityID:      court.FacilityID,
		StartTime:       start,
		EndTime:         end,
		DurationMinutes: req.Duration,
		Notes:           req.Notes,
	}

	// Regenerate on confirmation-code collision; the unique constraint is
	// what actually detects one.
	for attempt := 0; attempt < codeAttempts; attempt++ {
		reservation.ConfirmationCode = random.NewConfirmationCode()

		err = s.storage.CreateReservation(ctx, reservation)
		if err == nil {
			break
		}
		if errors.Is(err, storage.ErrCodeTaken) {
			continue
		}
		if errors.Is(err, storage.ErrConflict) {
			metrics.IncBookingConflict()
			return nil, s.conflictError(ctx, court.ID, start, end)
		}
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("failed to assign confirmation code: %w", err)
	}

	reservation.CourtName = court.Name
	reservation.FacilityName = court.FacilityName

	metrics.IncReservationCreated()

	s.dispatch("booking confirmation", func() error {
		return s.notifier.SendBookingConfirmation(reservation, user, court)
	})

	return reservation, nil
}

// Cancel enforces ownership, the terminal status transition and the
// minimum-notice policy, then sends the cancellation notice to the owner.
func (s *Service) Cancel(ctx context.Context, user *models.User, reservationID int64, reason string) (*models.Reservation, error) {
	reservation, err := s.storage.ReservationByID(ctx, reservationID)
	if err != nil {
		return nil, err
	}

	if !user.IsAdmin() && reservation.UserID != user.ID {
		return nil, ErrNotOwner
	}

	if reservation.Status == models.StatusCancelled {
		return nil, ErrAlreadyCancelled
	}

	if !user.IsAdmin() {
		notice := time.Duration(s.minCancellationHours) * time.Hour
		if time.Until(reservation.StartTime) < notice {
			return nil, violationf("reservations must be cancelled at least %d hours in advance", s.minCancellationHours)
		}
	}

	if reason == "" {
		reason = "User cancelled"
	}

	if err := s.storage.CancelReservation(ctx, reservationID, reason); err != nil {
		// A concurrent cancel can win between the read above and the update.
		if errors.Is(err, storage.ErrAlreadyCancelled) {
			return nil, ErrAlreadyCancelled
		}
		return nil, err
	}

	cancelledAt := time.Now()
	reservation.Status = models.StatusCancelled
	reservation.CancelledAt = &cancelledAt
	reservation.CancellationReason = reason

	metrics.IncReservationCancelled()

	owner := &models.User{ID: reservation.UserID, Name: reservation.UserName, Email: reservation.UserEmail}

	court, err := s.storage.CourtByID(ctx, reservation.CourtID)
	if err != nil {
		s.log.Error("failed to load court for cancellation notice", sl.Err(err))
		court = &models.Court{ID: reservation.CourtID, Name: reservation.CourtName, FacilityName: reservation.FacilityName}
	}

	s.dispatch("cancellation notice", func() error {
		return s.notifier.SendCancellationNotice(reservation, owner, court)
	})

	return reservation, nil
}

// conflictError queries for the overlapping interval purely for error
// messaging; a failed lookup still yields a generic conflict.
func (s *Service) conflictError(ctx context.Context, courtID int64, start, end time.Time) error {
	existing, err := s.storage.ConflictingReservation(ctx, courtID, start, end)
	if err != nil || existing == nil {
		return &ConflictError{}
	}
	return &ConflictError{Start: existing.StartTime, End: existing.EndTime}
}

// dispatch runs a notification send without blocking the caller. Failures
// are logged and never retried.
func (s *Service) dispatch(kind string, send func() error) {
	if s.notifier == nil {
		return
	}

	go func() {
		if err := send(); err != nil {
			s.log.Error("email send failed", slog.String("kind", kind), sl.Err(err))
		}
	}()
}
