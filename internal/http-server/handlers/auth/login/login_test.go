package login

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"courtbooker/internal/http-server/handlers/auth/login/mocks"
	"courtbooker/internal/lib/jwt"
	"courtbooker/internal/lib/logger/handlers/slogdiscard"
	"courtbooker/internal/models"
	"courtbooker/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const testSecret = "test-secret"

func activeUser(t *testing.T, password string) *models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	return &models.User{
		ID:           7,
		Email:        "alice@example.com",
		PasswordHash: string(hash),
		Name:         "Alice",
		Role:         models.RoleUser,
		IsActive:     true,
	}
}

func TestLoginHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	testCases := []struct {
		name           string
		requestBody    string
		mockSetup      func(t *testing.T, m *mocks.UserGetter)
		expectedStatus int
		checkBody      func(t *testing.T, body string)
	}{
		{
			name:        "Success",
			requestBody: `{"email": "alice@example.com", "password": "password123"}`,
			mockSetup: func(t *testing.T, m *mocks.UserGetter) {
				m.On("UserByEmail", mock.Anything, "alice@example.com").
					Return(activeUser(t, "password123"), nil)
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body string) {
				var resp Response
				require.NoError(t, json.Unmarshal([]byte(body), &resp))
				assert.NotEmpty(t, resp.Token)

				claims, err := jwt.Parse(testSecret, resp.Token)
				require.NoError(t, err)
				assert.Equal(t, int64(7), claims.UserID)
				assert.Equal(t, models.RoleUser, claims.Role)
			},
		},
		{
			name:        "Unknown email",
			requestBody: `{"email": "nobody@example.com", "password": "password123"}`,
			mockSetup: func(t *testing.T, m *mocks.UserGetter) {
				m.On("UserByEmail", mock.Anything, "nobody@example.com").
					Return(nil, storage.ErrUserNotFound)
			},
			expectedStatus: http.StatusUnauthorized,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, "invalid email or password")
			},
		},
		{
			name:        "Wrong password",
			requestBody: `{"email": "alice@example.com", "password": "wrong"}`,
			mockSetup: func(t *testing.T, m *mocks.UserGetter) {
				m.On("UserByEmail", mock.Anything, "alice@example.com").
					Return(activeUser(t, "password123"), nil)
			},
			expectedStatus: http.StatusUnauthorized,
			checkBody: func(t *testing.T, body string) {
				// Same message as an unknown email.
				assert.Contains(t, body, "invalid email or password")
			},
		},
		{
			name:        "Deactivated account",
			requestBody: `{"email": "alice@example.com", "password": "password123"}`,
			mockSetup: func(t *testing.T, m *mocks.UserGetter) {
				u := activeUser(t, "password123")
				u.IsActive = false
				m.On("UserByEmail", mock.Anything, "alice@example.com").Return(u, nil)
			},
			expectedStatus: http.StatusUnauthorized,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, "your account has been deactivated")
			},
		},
		{
			name:           "Missing email",
			requestBody:    `{"password": "password123"}`,
			mockSetup:      func(t *testing.T, m *mocks.UserGetter) {},
			expectedStatus: http.StatusBadRequest,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, "Email")
			},
		},
		{
			name:           "Invalid JSON",
			requestBody:    `not json`,
			mockSetup:      func(t *testing.T, m *mocks.UserGetter) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:        "Internal error",
			requestBody: `{"email": "alice@example.com", "password": "password123"}`,
			mockSetup: func(t *testing.T, m *mocks.UserGetter) {
				m.On("UserByEmail", mock.Anything, "alice@example.com").
					Return(nil, errors.New("database error"))
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mockGetter := mocks.NewUserGetter(t)
			tc.mockSetup(t, mockGetter)

			handler := New(logger, testSecret, 24*time.Hour, mockGetter)

			req, err := http.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewBufferString(tc.requestBody))
			require.NoError(t, err)

			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code, "Status code mismatch")

			if tc.checkBody != nil {
				tc.checkBody(t, rr.Body.String())
			}
		})
	}
}
