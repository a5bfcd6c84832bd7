package register

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"courtbooker/internal/http-server/handlers/auth/register/mocks"
	"courtbooker/internal/lib/logger/handlers/slogdiscard"
	"courtbooker/internal/models"
	"courtbooker/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestRegisterHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	testCases := []struct {
		name           string
		requestBody    string
		mockSetup      func(m *mocks.UserSaver)
		expectedStatus int
		checkBody      func(t *testing.T, body string)
	}{
		{
			name:        "Success",
			requestBody: `{"email": "bob@example.com", "password": "password123", "name": "Bob"}`,
			mockSetup: func(m *mocks.UserSaver) {
				m.On("CreateUser", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
					u := args.Get(1).(*models.User)
					u.ID = 11
					u.IsActive = true

					assert.Equal(t, "bob@example.com", u.Email)
					assert.Equal(t, models.RoleUser, u.Role)
					assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("password123")))
				}).Return(nil)
			},
			expectedStatus: http.StatusCreated,
			checkBody: func(t *testing.T, body string) {
				var resp Response
				require.NoError(t, json.Unmarshal([]byte(body), &resp))
				assert.NotEmpty(t, resp.Token)
				assert.Equal(t, int64(11), resp.User.ID)
				assert.NotContains(t, body, "password_hash")
			},
		},
		{
			name:        "Email already registered",
			requestBody: `{"email": "bob@example.com", "password": "password123", "name": "Bob"}`,
			mockSetup: func(m *mocks.UserSaver) {
				m.On("CreateUser", mock.Anything, mock.Anything).Return(storage.ErrUserExists)
			},
			expectedStatus: http.StatusBadRequest,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, "email already registered")
			},
		},
		{
			name:           "Invalid email",
			requestBody:    `{"email": "not-an-email", "password": "password123", "name": "Bob"}`,
			mockSetup:      func(m *mocks.UserSaver) {},
			expectedStatus: http.StatusBadRequest,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, "Email")
			},
		},
		{
			name:           "Password too short",
			requestBody:    `{"email": "bob@example.com", "password": "123", "name": "Bob"}`,
			mockSetup:      func(m *mocks.UserSaver) {},
			expectedStatus: http.StatusBadRequest,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, "Password")
			},
		},
		{
			name:           "Missing name",
			requestBody:    `{"email": "bob@example.com", "password": "password123"}`,
			mockSetup:      func(m *mocks.UserSaver) {},
			expectedStatus: http.StatusBadRequest,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, "Name")
			},
		},
		{
			name:           "Invalid JSON",
			requestBody:    `not json`,
			mockSetup:      func(m *mocks.UserSaver) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:        "Internal error",
			requestBody: `{"email": "bob@example.com", "password": "password123", "name": "Bob"}`,
			mockSetup: func(m *mocks.UserSaver) {
				m.On("CreateUser", mock.Anything, mock.Anything).Return(errors.New("database error"))
			},
			expectedStatus: http.StatusInternalServerError,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, "failed to register user")
			},
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mockSaver := mocks.NewUserSaver(t)
			tc.mockSetup(mockSaver)

			handler := New(logger, "test-secret", 24*time.Hour, mockSaver)

			req, err := http.NewRequest(http.MethodPost, "/api/auth/register", bytes.NewBufferString(tc.requestBody))
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
