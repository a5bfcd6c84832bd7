package storage

import "errors"

var (
	ErrUserNotFound        = errors.New("user not found")
	ErrUserExists          = errors.New("email already registered")
	ErrCourtNotFound       = errors.New("court not found")
	ErrReservationNotFound = errors.New("reservation not found")

	// ErrConflict is returned when an insert would overlap a confirmed
	// reservation on the same court. The database is the authority here.
	ErrConflict = errors.New("reservation conflicts with an existing booking")

	// ErrCodeTaken is returned when the generated confirmation code is
	// already in use; the caller regenerates and retries.
	ErrCodeTaken = errors.New("confirmation code already in use")

	// ErrAlreadyCancelled is returned when a cancel targets a reservation
	// that is no longer confirmed, e.g. after losing a race to a
	// concurrent cancel.
	ErrAlreadyCancelled = errors.New("reservation is already cancelled")
)

// ReservationFilter narrows ListReservations. Zero values mean "no filter".
type ReservationFilter struct {
	UserID   int64
	Status   string
	Upcoming bool
}

// CourtUpdate carries optional court fields; nil means "leave as is".
type CourtUpdate struct {
	Name        *string
	SurfaceType *string
	IsIndoor    *bool
	IsActive    *bool
	Notes       *string
}
