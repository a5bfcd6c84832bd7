package booking

import (
	"errors"
	"testing"
	"time"

	"courtbooker/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCourt() *models.Court {
	return &models.Court{
		ID:          1,
		Name:        "Court 1",
		IsActive:    true,
		OpeningTime: "07:00:00",
		ClosingTime: "22:00:00",
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)

	at := func(day, hour, minute int) time.Time {
		return time.Date(2026, 6, day, hour, minute, 0, 0, time.UTC)
	}

	testCases := []struct {
		name        string
		court       func() *models.Court
		start       time.Time
		end         time.Time
		duration    int
		expectedErr string
	}{
		{
			name:     "Valid booking",
			court:    testCourt,
			start:    at(2, 10, 0),
			end:      at(2, 11, 0),
			duration: 60,
		},
		{
			name:        "Start in the past",
			court:       testCourt,
			start:       at(1, 9, 0),
			end:         at(1, 10, 0),
			duration:    60,
			expectedErr: "cannot book a time in the past",
		},
		{
			name:        "Exceeds default max duration",
			court:       testCourt,
			start:       at(2, 10, 0),
			end:         at(2, 12, 30),
			duration:    150,
			expectedErr: "maximum booking duration is 120 minutes",
		},
		{
			name: "Exceeds court max duration",
			court: func() *models.Court {
				c := testCourt()
				c.MaxBookingDurationMinutes = 60
				return c
			},
			start:       at(2, 10, 0),
			end:         at(2, 11, 30),
			duration:    90,
			expectedErr: "maximum booking duration is 60 minutes",
		},
		{
			name:        "Beyond default advance window",
			court:       testCourt,
			start:       at(16, 10, 0),
			end:         at(16, 11, 0),
			duration:    60,
			expectedErr: "cannot book more than 14 days in advance",
		},
		{
			name: "Beyond court advance window",
			court: func() *models.Court {
				c := testCourt()
				c.MaxAdvanceBookingDays = 3
				return c
			},
			start:       at(5, 10, 0),
			end:         at(5, 11, 0),
			duration:    60,
			expectedErr: "cannot book more than 3 days in advance",
		},
		{
			name:     "Exactly at advance boundary",
			court:    testCourt,
			start:    at(15, 11, 0),
			end:      at(15, 12, 0),
			duration: 60,
		},
		{
			name:        "Before opening",
			court:       testCourt,
			start:       at(2, 6, 30),
			end:         at(2, 7, 30),
			duration:    60,
			expectedErr: "court operating hours: 07:00:00 - 22:00:00",
		},
		{
			name:        "Past closing",
			court:       testCourt,
			start:       at(2, 21, 30),
			end:         at(2, 22, 30),
			duration:    60,
			expectedErr: "court operating hours: 07:00:00 - 22:00:00",
		},
		{
			name:     "Ends exactly at closing",
			court:    testCourt,
			start:    at(2, 21, 0),
			end:      at(2, 22, 0),
			duration: 60,
		},
		{
			name:     "Starts exactly at opening",
			court:    testCourt,
			start:    at(2, 7, 0),
			end:      at(2, 8, 0),
			duration: 60,
		},
		{
			name: "Crosses midnight",
			court: func() *models.Court {
				c := testCourt()
				c.ClosingTime = "23:59:00"
				return c
			},
			start:       at(2, 23, 30),
			end:         at(3, 0, 30),
			duration:    60,
			expectedErr: "court operating hours: 07:00:00 - 23:59:00",
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			err := Validate(tc.court(), tc.start, tc.end, tc.duration, now)

			if tc.expectedErr == "" {
				assert.NoError(t, err)
				return
			}

			require.Error(t, err)

			var ruleErr *RuleViolation
			require.ErrorAs(t, err, &ruleErr)
			assert.Equal(t, tc.expectedErr, ruleErr.Message)
		})
	}
}

func TestValidateMalformedHours(t *testing.T) {
	t.Parallel()

	court := testCourt()
	court.OpeningTime = "bogus"

	now := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)
	start := time.Date(2026, 6, 2, 10, 0, 0, 0, time.UTC)

	err := Validate(court, start, start.Add(time.Hour), 60, now)

	require.Error(t, err)

	var ruleErr *RuleViolation
	assert.False(t, errors.As(err, &ruleErr), "malformed hours should not read as a user-facing rule")
}

func TestClockMinutes(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		clock    string
		expected int
		wantErr  bool
	}{
		{clock: "07:00", expected: 420},
		{clock: "07:00:00", expected: 420},
		{clock: "22:30:00", expected: 1350},
		{clock: "00:00", expected: 0},
		{clock: "bogus", wantErr: true},
		{clock: "12", wantErr: true},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.clock, func(t *testing.T) {
			t.Parallel()

			got, err := clockMinutes(tc.clock)

			if tc.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.expected, got)
		})
	}
}
