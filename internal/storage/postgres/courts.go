package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"courtbooker/internal/models"
	"courtbooker/internal/storage"
)

const courtColumns = `
	c.id, c.facility_id, c.name, COALESCE(c.court_number, 0), COALESCE(c.surface_type, ''),
	c.is_indoor, c.is_active, COALESCE(c.notes, ''),
	f.name, COALESCE(f.address, ''),
	to_char(f.opening_time, 'HH24:MI:SS'), to_char(f.closing_time, 'HH24:MI:SS'),
	COALESCE(c.max_booking_duration_minutes, 0), COALESCE(c.max_advance_booking_days, 0)`

func scanCourt(row interface{ Scan(...any) error }) (*models.Court, error) {
	var court models.Court
	err := row.Scan(
		&court.ID,
		&court.FacilityID,
		&court.Name,
		&court.CourtNumber,
		&court.SurfaceType,
		&court.IsIndoor,
		&court.IsActive,
		&court.Notes,
		&court.FacilityName,
		&court.FacilityAddress,
		&court.OpeningTime,
		&court.ClosingTime,
		&court.MaxBookingDurationMinutes,
		&court.MaxAdvanceBookingDays,
	)
	if err != nil {
		return nil, err
	}
	return &court, nil
}

func (s *Storage) ListCourts(ctx context.Context, facilityID int64, isActive *bool) ([]models.Court, error) {
	query := `
		SELECT ` + courtColumns + `
		FROM courts c
		JOIN facilities f ON c.facility_id = f.id
		WHERE 1=1`

	var params []any
	if facilityID > 0 {
		params = append(params, facilityID)
		query += fmt.Sprintf(" AND c.facility_id = $%d", len(params))
	}
	if isActive != nil {
		params = append(params, *isActive)
		query += fmt.Sprintf(" AND c.is_active = $%d", len(params))
	}

	query += " ORDER BY c.facility_id, c.court_number"

	rows, err := s.DB.QueryContext(ctx, query, params...)
	if err != nil {
		return nil, fmt.Errorf("failed to list courts: %w", err)
	}
	defer rows.Close()

	var courts []models.Court
	for rows.Next() {
		court, err := scanCourt(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan court: %w", err)
		}
		courts = append(courts, *court)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating courts: %w", err)
	}

	return courts, nil
}

func (s *Storage) CourtByID(ctx context.Context, id int64) (*models.Court, error) {
	query := `
		SELECT ` + courtColumns + `
		FROM courts c
		JOIN facilities f ON c.facility_id = f.id
		WHERE c.id = $1`

	court, err := scanCourt(s.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrCourtNotFound
		}
		return nil, fmt.Errorf("failed to get court: %w", err)
	}

	return court, nil
}

// ActiveCourtByID loads a court for booking. Inactive courts are reported
// the same way as missing ones.
func (s *Storage) ActiveCourtByID(ctx context.Context, id int64) (*models.Court, error) {
	court, err := s.CourtByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !court.IsActive {
		return nil, storage.ErrCourtNotFound
	}
	return court, nil
}

func (s *Storage) SaveCourt(ctx context.Context, court *models.Court) error {
	query := `
		INSERT INTO courts (facility_id, name, court_number, surface_type, is_indoor, notes)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`

	err := s.DB.QueryRowContext(ctx, query,
		court.FacilityID,
		court.Name,
		nullInt(court.CourtNumber),
		court.SurfaceType,
		court.IsIndoor,
		nullString(court.Notes),
	).Scan(&court.ID)
	if err != nil {
		return fmt.Errorf("failed to create court: %w", err)
	}

	court.IsActive = true

	return nil
}

func (s *Storage) UpdateCourt(ctx context.Context, id int64, upd storage.CourtUpdate) error {
	query := `
		UPDATE courts
		SET name = COALESCE($1, name),
		    surface_type = COALESCE($2, surface_type),
		    is_indoor = COALESCE($3, is_indoor),
		    is_active = COALESCE($4, is_active),
		    notes = COALESCE($5, notes)
		WHERE id = $6`

	result, err := s.DB.ExecContext(ctx, query, upd.Name, upd.SurfaceType, upd.IsIndoor, upd.IsActive, upd.Notes, id)
	if err != nil {
		return fmt.Errorf("failed to update court: %w", err)
	}

	rows, _ := result.RowsAffected()
	if rows == 0 {
		return storage.ErrCourtNotFound
	}

	return nil
}

func (s *Storage) DeleteCourt(ctx context.Context, id int64) error {
	result, err := s.DB.ExecContext(ctx, `DELETE FROM courts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete court: %w", err)
	}

	rows, _ := result.RowsAffected()
	if rows == 0 {
		return storage.ErrCourtNotFound
	}

	return nil
}

func nullInt(n int) sql.NullInt64 {
	return sql.NullInt64{Int64: int64(n), Valid: n != 0}
}
