package models

import "time"

const (
	StatusConfirmed = "confirmed"
	StatusCancelled = "cancelled"
)

// Reservation holds a half-open interval [StartTime, EndTime) on a court.
type Reservation struct {
	ID                 int64      `json:"id"`
	UserID             int64      `json:"user_id"`
	CourtID            int64      `json:"court_id"`
	FacilityID         int64      `json:"facility_id"`
	StartTime          time.Time  `json:"start_time"`
	EndTime            time.Time  `json:"end_time"`
	DurationMinutes    int        `json:"duration_minutes"`
	Status             string     `json:"status"`
	ConfirmationCode   string     `json:"confirmation_code"`
	Notes              string     `json:"notes,omitempty"`
	CancelledAt        *time.Time `json:"cancelled_at,omitempty"`
	CancellationReason string     `json:"cancellation_reason,omitempty"`
	CreatedAt          time.Time  `json:"created_at"`

	CourtName    string `json:"court_name,omitempty"`
	CourtNumber  int    `json:"court_number,omitempty"`
	FacilityName string `json:"facility_name,omitempty"`
	UserName     string `json:"user_name,omitempty"`
	UserEmail    string `json:"user_email,omitempty"`
}
