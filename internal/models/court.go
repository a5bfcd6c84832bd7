package models

// Court is always loaded together with its facility, so the fields the
// booking rules need (operating hours, limits) live right on the struct.
type Court struct {
	ID          int64  `json:"id"`
	FacilityID  int64  `json:"facility_id"`
	Name        string `json:"name"`
	CourtNumber int    `json:"court_number,omitempty"`
	SurfaceType string `json:"surface_type,omitempty"`
	IsIndoor    bool   `json:"is_indoor"`
	IsActive    bool   `json:"is_active"`
	Notes       string `json:"notes,omitempty"`

	FacilityName    string `json:"facility_name,omitempty"`
	FacilityAddress string `json:"facility_address,omitempty"`

	// Operating hours as time-of-day strings, "HH:MM:SS".
	OpeningTime string `json:"opening_time,omitempty"`
	ClosingTime string `json:"closing_time,omitempty"`

	MaxBookingDurationMinutes int `json:"max_booking_duration_minutes,omitempty"`
	MaxAdvanceBookingDays     int `json:"max_advance_booking_days,omitempty"`
}
