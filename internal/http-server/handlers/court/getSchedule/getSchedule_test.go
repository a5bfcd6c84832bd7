package getSchedule

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"courtbooker/internal/http-server/handlers/court/getSchedule/mocks"
	"courtbooker/internal/lib/logger/handlers/slogdiscard"
	"courtbooker/internal/models"
	"courtbooker/internal/storage"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestGetScheduleHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	court := &models.Court{
		ID:          3,
		Name:        "Court 3",
		IsActive:    true,
		OpeningTime: "07:00:00",
		ClosingTime: "22:00:00",
	}

	start := time.Date(2026, 6, 2, 10, 0, 0, 0, time.UTC)
	schedule := []models.Reservation{
		{ID: 42, CourtID: 3, StartTime: start, EndTime: start.Add(time.Hour), Status: models.StatusConfirmed},
	}

	testCases := []struct {
		name           string
		courtID        string
		query          string
		mockSetup      func(m *mocks.ScheduleGetter)
		expectedStatus int
		checkBody      func(t *testing.T, body string)
	}{
		{
			name:    "Success",
			courtID: "3",
			query:   "?date=2026-06-02",
			mockSetup: func(m *mocks.ScheduleGetter) {
				m.On("CourtByID", mock.Anything, int64(3)).Return(court, nil)
				m.On("CourtSchedule", mock.Anything, int64(3), "2026-06-02").Return(schedule, nil)
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, `"status":"OK"`)
				assert.Contains(t, body, `"date":"2026-06-02"`)
				assert.Contains(t, body, `"Court 3"`)
			},
		},
		{
			name:    "Empty schedule",
			courtID: "3",
			query:   "?date=2026-06-03",
			mockSetup: func(m *mocks.ScheduleGetter) {
				m.On("CourtByID", mock.Anything, int64(3)).Return(court, nil)
				m.On("CourtSchedule", mock.Anything, int64(3), "2026-06-03").Return(nil, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Invalid court ID",
			courtID:        "abc",
			query:          "?date=2026-06-02",
			mockSetup:      func(m *mocks.ScheduleGetter) {},
			expectedStatus: http.StatusBadRequest,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, "invalid court id format")
			},
		},
		{
			name:           "Missing date",
			courtID:        "3",
			query:          "",
			mockSetup:      func(m *mocks.ScheduleGetter) {},
			expectedStatus: http.StatusBadRequest,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, "valid date is required (YYYY-MM-DD)")
			},
		},
		{
			name:           "Malformed date",
			courtID:        "3",
			query:          "?date=June+2nd",
			mockSetup:      func(m *mocks.ScheduleGetter) {},
			expectedStatus: http.StatusBadRequest,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, "valid date is required (YYYY-MM-DD)")
			},
		},
		{
			name:    "Court not found",
			courtID: "99",
			query:   "?date=2026-06-02",
			mockSetup: func(m *mocks.ScheduleGetter) {
				m.On("CourtByID", mock.Anything, int64(99)).Return(nil, storage.ErrCourtNotFound)
			},
			expectedStatus: http.StatusNotFound,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, "court not found")
			},
		},
		{
			name:    "Schedule query fails",
			courtID: "3",
			query:   "?date=2026-06-02",
			mockSetup: func(m *mocks.ScheduleGetter) {
				m.On("CourtByID", mock.Anything, int64(3)).Return(court, nil)
				m.On("CourtSchedule", mock.Anything, int64(3), "2026-06-02").
					Return(nil, errors.New("database error"))
			},
			expectedStatus: http.StatusInternalServerError,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, "failed to get schedule")
			},
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mockGetter := mocks.NewScheduleGetter(t)
			tc.mockSetup(mockGetter)

			handler := New(logger, mockGetter)

			router := chi.NewRouter()
			router.Get("/api/courts/{id}/schedule", handler)

			req, err := http.NewRequest(http.MethodGet,
				"/api/courts/"+tc.courtID+"/schedule"+tc.query, nil)
			require.NoError(t, err)

			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code, "Status code mismatch")

			if tc.checkBody != nil {
				tc.checkBody(t, rr.Body.String())
			}
		})
	}
}
