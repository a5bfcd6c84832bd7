package booking

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"courtbooker/internal/models"
)

// Effective limits when a court has none configured.
const (
	DefaultMaxDurationMinutes = 120
	DefaultMaxAdvanceDays     = 14
)

// RuleViolation is a booking rejected by a facility rule. The message is
// shown to the user as is.
type RuleViolation struct {
	Message string
}

func (e *RuleViolation) Error() string {
	return e.Message
}

func violationf(format string, args ...any) *RuleViolation {
	return &RuleViolation{Message: fmt.Sprintf(format, args...)}
}

// ValidateStart rejects bookings that start in the past.
func ValidateStart(start, now time.Time) error {
	if start.Before(now) {
		return &RuleViolation{Message: "cannot book a time in the past"}
	}
	return nil
}

// Validate applies the facility rules to a proposed booking, first failing
// rule wins: past-time, max duration, advance window, operating hours.
// It touches no storage and has no side effects; the conflict predicate and
// the per-user quota are checked separately against the database.
func Validate(court *models.Court, start, end time.Time, durationMinutes int, now time.Time) error {
	if err := ValidateStart(start, now); err != nil {
		return err
	}

	maxDuration := court.MaxBookingDurationMinutes
	if maxDuration <= 0 {
		maxDuration = DefaultMaxDurationMinutes
	}
	if durationMinutes > maxDuration {
		return violationf("maximum booking duration is %d minutes", maxDuration)
	}

	maxAdvanceDays := court.MaxAdvanceBookingDays
	if maxAdvanceDays <= 0 {
		maxAdvanceDays = DefaultMaxAdvanceDays
	}
	if start.After(now.AddDate(0, 0, maxAdvanceDays)) {
		return violationf("cannot book more than %d days in advance", maxAdvanceDays)
	}

	opening, err := clockMinutes(court.OpeningTime)
	if err != nil {
		return fmt.Errorf("invalid opening time %q: %w", court.OpeningTime, err)
	}
	closing, err := clockMinutes(court.ClosingTime)
	if err != nil {
		return fmt.Errorf("invalid closing time %q: %w", court.ClosingTime, err)
	}

	// Bookings are single-day; an end clock earlier than the start clock
	// means the interval crosses midnight and is rejected.
	startMinutes := start.Hour()*60 + start.Minute()
	endMinutes := end.Hour()*60 + end.Minute()
	if startMinutes < opening || endMinutes > closing || endMinutes < startMinutes {
		return violationf("court operating hours: %s - %s", court.OpeningTime, court.ClosingTime)
	}

	return nil
}

// clockMinutes parses "HH:MM" or "HH:MM:SS" into minutes since midnight.
func clockMinutes(clock string) (int, error) {
	parts := strings.Split(clock, ":")
	if len(parts) < 2 {
		return 0, fmt.Errorf("malformed time of day")
	}

	hours, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, err
	}
	minutes, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, err
	}

	return hours*60 + minutes, nil
}
