package getReservation

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"courtbooker/internal/http-server/handlers/reservation/getReservation/mocks"
	"courtbooker/internal/http-server/middleware/mwauth"
	"courtbooker/internal/lib/logger/handlers/slogdiscard"
	"courtbooker/internal/models"
	"courtbooker/internal/storage"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestGetReservationHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	owner := &models.User{ID: 7, Role: models.RoleUser}
	stranger := &models.User{ID: 8, Role: models.RoleUser}
	admin := &models.User{ID: 1, Role: models.RoleAdmin}

	start := time.Date(2026, 6, 2, 10, 0, 0, 0, time.UTC)
	reservation := &models.Reservation{
		ID:               42,
		UserID:           7,
		CourtID:          3,
		StartTime:        start,
		EndTime:          start.Add(time.Hour),
		DurationMinutes:  60,
		Status:           models.StatusConfirmed,
		ConfirmationCode: "PB-123-ABC",
	}

	testCases := []struct {
		name           string
		user           *models.User
		reservationID  string
		mockSetup      func(m *mocks.ReservationGetter)
		expectedStatus int
		checkBody      func(t *testing.T, body string)
	}{
		{
			name:          "Owner views own reservation",
			user:          owner,
			reservationID: "42",
			mockSetup: func(m *mocks.ReservationGetter) {
				m.On("ReservationByID", mock.Anything, int64(42)).Return(reservation, nil)
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, `"status":"OK"`)
				assert.Contains(t, body, `"confirmation_code":"PB-123-ABC"`)
			},
		},
		{
			name:          "Admin views someone else's reservation",
			user:          admin,
			reservationID: "42",
			mockSetup: func(m *mocks.ReservationGetter) {
				m.On("ReservationByID", mock.Anything, int64(42)).Return(reservation, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:          "Non-owner is rejected",
			user:          stranger,
			reservationID: "42",
			mockSetup: func(m *mocks.ReservationGetter) {
				m.On("ReservationByID", mock.Anything, int64(42)).Return(reservation, nil)
			},
			expectedStatus: http.StatusForbidden,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, "you can only view your own reservations")
			},
		},
		{
			name:           "No user in context",
			user:           nil,
			reservationID:  "42",
			mockSetup:      func(m *mocks.ReservationGetter) {},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "Invalid reservation ID",
			user:           owner,
			reservationID:  "abc",
			mockSetup:      func(m *mocks.ReservationGetter) {},
			expectedStatus: http.StatusBadRequest,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, "invalid reservation id format")
			},
		},
		{
			name:          "Not found",
			user:          owner,
			reservationID: "404",
			mockSetup: func(m *mocks.ReservationGetter) {
				m.On("ReservationByID", mock.Anything, int64(404)).
					Return(nil, storage.ErrReservationNotFound)
			},
			expectedStatus: http.StatusNotFound,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, "reservation not found")
			},
		},
		{
			name:          "Internal error",
			user:          owner,
			reservationID: "42",
			mockSetup: func(m *mocks.ReservationGetter) {
				m.On("ReservationByID", mock.Anything, int64(42)).
					Return(nil, errors.New("database error"))
			},
			expectedStatus: http.StatusInternalServerError,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, "failed to get reservation")
			},
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mockGetter := mocks.NewReservationGetter(t)
			tc.mockSetup(mockGetter)

			handler := New(logger, mockGetter)

			router := chi.NewRouter()
			router.Get("/api/reservations/{id}", handler)

			req, err := http.NewRequest(http.MethodGet, "/api/reservations/"+tc.reservationID, nil)
			require.NoError(t, err)

			if tc.user != nil {
				req = req.WithContext(mwauth.ContextWithUser(req.Context(), tc.user))
			}

			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code, "Status code mismatch")

			if tc.checkBody != nil {
				tc.checkBody(t, rr.Body.String())
			}
		})
	}
}
