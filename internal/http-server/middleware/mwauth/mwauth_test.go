package mwauth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"courtbooker/internal/http-server/middleware/mwauth/mocks"
	"courtbooker/internal/lib/jwt"
	"courtbooker/internal/lib/logger/handlers/slogdiscard"
	"courtbooker/internal/models"
	"courtbooker/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func nextHandler(t *testing.T, expectUser *models.User) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, ok := UserFromContext(r.Context())
		require.True(t, ok, "user missing from context")
		assert.Equal(t, expectUser.ID, user.ID)
		w.WriteHeader(http.StatusOK)
	})
}

func issueToken(t *testing.T, user *models.User) string {
	t.Helper()

	token, err := jwt.NewToken(testSecret, user.ID, user.Email, user.Role, time.Hour)
	require.NoError(t, err)
	return token
}

func TestAuthMiddleware(t *testing.T) {
	t.Parallel()

	user := &models.User{ID: 7, Email: "alice@example.com", Role: models.RoleUser, IsActive: true}

	testCases := []struct {
		name           string
		authHeader     func(t *testing.T) string
		mockSetup      func(m *mocks.UserProvider)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:       "Valid token",
			authHeader: func(t *testing.T) string { return "Bearer " + issueToken(t, user) },
			mockSetup: func(m *mocks.UserProvider) {
				m.On("UserByID", mock.Anything, int64(7)).Return(user, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "No header",
			authHeader:     func(t *testing.T) string { return "" },
			mockSetup:      func(m *mocks.UserProvider) {},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   "no token provided, please log in",
		},
		{
			name:           "Not a bearer token",
			authHeader:     func(t *testing.T) string { return "Basic abc123" },
			mockSetup:      func(m *mocks.UserProvider) {},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   "no token provided, please log in",
		},
		{
			name:           "Garbage token",
			authHeader:     func(t *testing.T) string { return "Bearer not.a.token" },
			mockSetup:      func(m *mocks.UserProvider) {},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   "invalid or expired token",
		},
		{
			name: "Expired token",
			authHeader: func(t *testing.T) string {
				token, err := jwt.NewToken(testSecret, 7, user.Email, user.Role, -time.Minute)
				require.NoError(t, err)
				return "Bearer " + token
			},
			mockSetup:      func(m *mocks.UserProvider) {},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   "invalid or expired token",
		},
		{
			name:       "User deleted after token issued",
			authHeader: func(t *testing.T) string { return "Bearer " + issueToken(t, user) },
			mockSetup: func(m *mocks.UserProvider) {
				m.On("UserByID", mock.Anything, int64(7)).Return(nil, storage.ErrUserNotFound)
			},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   "user no longer exists",
		},
		{
			name:       "Deactivated account",
			authHeader: func(t *testing.T) string { return "Bearer " + issueToken(t, user) },
			mockSetup: func(m *mocks.UserProvider) {
				deactivated := *user
				deactivated.IsActive = false
				m.On("UserByID", mock.Anything, int64(7)).Return(&deactivated, nil)
			},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   "your account has been deactivated",
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mockUsers := mocks.NewUserProvider(t)
			tc.mockSetup(mockUsers)

			mw := New(slogdiscard.NewDiscardLogger(), testSecret, mockUsers)
			handler := mw(nextHandler(t, user))

			req := httptest.NewRequest(http.MethodGet, "/api/reservations", nil)
			if header := tc.authHeader(t); header != "" {
				req.Header.Set("Authorization", header)
			}

			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)
			if tc.expectedBody != "" {
				assert.Contains(t, rr.Body.String(), tc.expectedBody)
			}
		})
	}
}

func TestRequireAdmin(t *testing.T) {
	t.Parallel()

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	t.Run("Admin passes", func(t *testing.T) {
		t.Parallel()

		admin := &models.User{ID: 1, Role: models.RoleAdmin, IsActive: true}

		req := httptest.NewRequest(http.MethodPost, "/api/courts", nil)
		req = req.WithContext(ContextWithUser(req.Context(), admin))

		rr := httptest.NewRecorder()
		RequireAdmin(next).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("Regular user rejected", func(t *testing.T) {
		t.Parallel()

		user := &models.User{ID: 7, Role: models.RoleUser, IsActive: true}

		req := httptest.NewRequest(http.MethodPost, "/api/courts", nil)
		req = req.WithContext(ContextWithUser(req.Context(), user))

		rr := httptest.NewRecorder()
		RequireAdmin(next).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusForbidden, rr.Code)
		assert.Contains(t, rr.Body.String(), "this action requires administrator privileges")
	})

	t.Run("No user in context", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodGet, "/api/courts", nil)

		rr := httptest.NewRecorder()
		RequireAdmin(next).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}
