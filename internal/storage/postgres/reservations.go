package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"courtbooker/internal/models"
	"courtbooker/internal/storage"

	"github.com/lib/pq"
)

const reservationColumns = `
	r.id, r.user_id, r.court_id, r.facility_id, r.start_time, r.end_time,
	r.duration_minutes, r.status, r.confirmation_code, COALESCE(r.notes, ''),
	r.cancelled_at, COALESCE(r.cancellation_reason, ''), r.created_at,
	c.name, COALESCE(c.court_number, 0), f.name, u.name, u.email`

const reservationJoins = `
	FROM reservations r
	JOIN courts c ON r.court_id = c.id
	JOIN facilities f ON r.facility_id = f.id
	JOIN users u ON r.user_id = u.id`

func scanReservation(row interface{ Scan(...any) error }) (*models.Reservation, error) {
	var r models.Reservation
	var cancelledAt sql.NullTime
	err := row.Scan(
		&r.ID,
		&r.UserID,
		&r.CourtID,
		&r.FacilityID,
		&r.StartTime,
		&r.EndTime,
		&r.DurationMinutes,
		&r.Status,
		&r.ConfirmationCode,
		&r.Notes,
		&cancelledAt,
		&r.CancellationReason,
		&r.CreatedAt,
		&r.CourtName,
		&r.CourtNumber,
		&r.FacilityName,
		&r.UserName,
		&r.UserEmail,
	)
	if err != nil {
		return nil, err
	}
	if cancelledAt.Valid {
		r.CancelledAt = &cancelledAt.Time
	}
	return &r, nil
}

// CreateReservation inserts a confirmed reservation. The conflict predicate
// is re-evaluated inside the transaction, so two concurrent requests for
// overlapping intervals on the same court cannot both commit. The insert
// trigger in the schema backs this up.
func (s *Storage) CreateReservation(ctx context.Context, r *models.Reservation) error {
	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	var hasConflict bool
	err = tx.QueryRowContext(ctx,
		`SELECT check_reservation_conflict($1, $2::timestamp, $3::timestamp)`,
		r.CourtID, r.StartTime, r.EndTime,
	).Scan(&hasConflict)
	if err != nil {
		return fmt.Errorf("failed to check reservation conflict in tx: %w", err)
	}
	if hasConflict {
		return storage.ErrConflict
	}

	query := `
		INSERT INTO reservations
			(user_id, court_id, facility_id, start_time, end_time, duration_minutes, confirmation_code, notes, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at`

	err = tx.QueryRowContext(ctx, query,
		r.UserID,
		r.CourtID,
		r.FacilityID,
		r.StartTime,
		r.EndTime,
		r.DurationMinutes,
		r.ConfirmationCode,
		nullString(r.Notes),
		models.StatusConfirmed,
	).Scan(&r.ID, &r.CreatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) {
			switch {
			case pqErr.Constraint == "reservations_confirmation_code_key":
				return storage.ErrCodeTaken
			case pqErr.Code.Name() == "exclusion_violation" || pqErr.Code.Name() == "raise_exception":
				return storage.ErrConflict
			}
		}
		return fmt.Errorf("failed to insert reservation: %w", err)
	}

	r.Status = models.StatusConfirmed

	return tx.Commit()
}

// HasConflict is the advisory pre-flight check; the transactional recheck in
// CreateReservation is what actually guarantees exclusivity.
func (s *Storage) HasConflict(ctx context.Context, courtID int64, start, end time.Time) (bool, error) {
	var hasConflict bool
	err := s.DB.QueryRowContext(ctx,
		`SELECT check_reservation_conflict($1, $2::timestamp, $3::timestamp)`,
		courtID, start, end,
	).Scan(&hasConflict)
	if err != nil {
		return false, fmt.Errorf("failed to check reservation conflict: %w", err)
	}
	return hasConflict, nil
}

// ConflictingReservation returns one confirmed reservation overlapping
// [start, end) on the court, or nil when none matches. Used only to build
// a readable conflict message.
func (s *Storage) ConflictingReservation(ctx context.Context, courtID int64, start, end time.Time) (*models.Reservation, error) {
	query := `
		SELECT start_time, end_time
		FROM reservations
		WHERE court_id = $1
		  AND status = 'confirmed'
		  AND (
		    (start_time <= $2::timestamp AND end_time > $2::timestamp) OR
		    (start_time < $3::timestamp AND end_time >= $3::timestamp) OR
		    (start_time >= $2::timestamp AND end_time <= $3::timestamp)
		  )
		LIMIT 1`

	var r models.Reservation
	err := s.DB.QueryRowContext(ctx, query, courtID, start, end).Scan(&r.StartTime, &r.EndTime)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get conflicting reservation: %w", err)
	}

	return &r, nil
}

func (s *Storage) CountActiveReservations(ctx context.Context, userID int64) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM reservations
		WHERE user_id = $1
		  AND status = 'confirmed'
		  AND end_time > NOW()`

	var count int
	if err := s.DB.QueryRowContext(ctx, query, userID).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count active reservations: %w", err)
	}

	return count, nil
}

func (s *Storage) ReservationByID(ctx context.Context, id int64) (*models.Reservation, error) {
	query := `SELECT ` + reservationColumns + reservationJoins + ` WHERE r.id = $1`

	r, err := scanReservation(s.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrReservationNotFound
		}
		return nil, fmt.Errorf("failed to get reservation: %w", err)
	}

	return r, nil
}

func (s *Storage) ListReservations(ctx context.Context, filter storage.ReservationFilter) ([]models.Reservation, error) {
	query := `SELECT ` + reservationColumns + reservationJoins + ` WHERE 1=1`

	var params []any
	if filter.UserID > 0 {
		params = append(params, filter.UserID)
		query += fmt.Sprintf(" AND r.user_id = $%d", len(params))
	}
	if filter.Status != "" {
		params = append(params, filter.Status)
		query += fmt.Sprintf(" AND r.status = $%d", len(params))
	}
	if filter.Upcoming {
		query += " AND r.start_time > NOW()"
	}

	query += " ORDER BY r.start_time DESC"

	rows, err := s.DB.QueryContext(ctx, query, params...)
	if err != nil {
		return nil, fmt.Errorf("failed to list reservations: %w", err)
	}
	defer rows.Close()

	var reservations []models.Reservation
	for rows.Next() {
		r, err := scanReservation(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan reservation: %w", err)
		}
		reservations = append(reservations, *r)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating reservations: %w", err)
	}

	return reservations, nil
}

// CourtSchedule returns confirmed reservations for a court on a given day,
// ordered by start time. The date is "YYYY-MM-DD".
func (s *Storage) CourtSchedule(ctx context.Context, courtID int64, date string) ([]models.Reservation, error) {
	query := `SELECT ` + reservationColumns + reservationJoins + `
		WHERE r.court_id = $1
		  AND DATE(r.start_time) = $2
		  AND r.status = 'confirmed'
		ORDER BY r.start_time`

	rows, err := s.DB.QueryContext(ctx, query, courtID, date)
	if err != nil {
		return nil, fmt.Errorf("failed to get court schedule: %w", err)
	}
	defer rows.Close()

	var reservations []models.Reservation
	for rows.Next() {
		r, err := scanReservation(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan reservation: %w", err)
		}
		reservations = append(reservations, *r)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating schedule: %w", err)
	}

	return reservations, nil
}

// CancelReservation flips a confirmed reservation to cancelled. The status
// predicate makes the transition terminal even under concurrent cancels.
func (s *Storage) CancelReservation(ctx context.Context, id int64, reason string) error {
	query := `
		UPDATE reservations
		SET status = 'cancelled',
		    cancelled_at = NOW(),
		    cancellation_reason = $1
		WHERE id = $2 AND status = 'confirmed'`

	result, err := s.DB.ExecContext(ctx, query, reason, id)
	if err != nil {
		return fmt.Errorf("failed to cancel reservation: %w", err)
	}

	rows, _ := result.RowsAffected()
	if rows == 0 {
		// The row may exist but already be cancelled; a concurrent cancel
		// between the caller's read and this update lands here.
		var status string
		err = s.DB.QueryRowContext(ctx, `SELECT status FROM reservations WHERE id = $1`, id).Scan(&status)
		if errors.Is(err, sql.ErrNoRows) {
			return storage.ErrReservationNotFound
		}
		if err != nil {
			return fmt.Errorf("failed to check reservation status: %w", err)
		}
		if status == models.StatusCancelled {
			return storage.ErrAlreadyCancelled
		}
		return storage.ErrReservationNotFound
	}

	return nil
}
