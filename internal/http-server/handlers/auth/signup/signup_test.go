package signup

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"pgBooker/internal/http-server/handlers/auth/signup/mocks"
	"pgBooker/internal/lib/logger/handlers/slogdiscard"
	"pgBooker/internal/models"
	"pgBooker/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSignupHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	testCases := []struct {
		name           string
		requestBody    string
		mockSetup      func(mock *mocks.UserRegistrar)
		expectedStatus int
		expectedBody   string
		checkBody      func(t *testing.T, body string)
	}{
		{
			name:        "Success",
			requestBody: `{"username": "ravi", "email": "ravi@example.com", "password": "hunter22", "password2": "hunter22", "role": "student"}`,
			mockSetup: func(m *mocks.UserRegistrar) {
				m.On("Signup", mock.Anything, "ravi", "ravi@example.com", "hunter22", models.RoleStudent).
					Return(int64(1), nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"status":"OK","message":"you are now registered and can log in","user_id":1}`,
		},
		{
			name:           "Invalid JSON",
			requestBody:    `not json`,
			mockSetup:      func(m *mocks.UserRegistrar) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"failed to decode request"}`,
		},
		{
			name:           "Missing fields",
			requestBody:    `{}`,
			mockSetup:      func(m *mocks.UserRegistrar) {},
			expectedStatus: http.StatusBadRequest,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, `"status":"Error"`)
				assert.Contains(t, body, "Username")
				assert.Contains(t, body, "Email")
				assert.Contains(t, body, "Password")
			},
		},
		{
			name:           "Password too short",
			requestBody:    `{"username": "ravi", "email": "ravi@example.com", "password": "abc", "password2": "abc", "role": "student"}`,
			mockSetup:      func(m *mocks.UserRegistrar) {},
			expectedStatus: http.StatusBadRequest,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, "field Password must be at least 6 characters")
			},
		},
		{
			name:           "Passwords do not match",
			requestBody:    `{"username": "ravi", "email": "ravi@example.com", "password": "hunter22", "password2": "hunter23", "role": "student"}`,
			mockSetup:      func(m *mocks.UserRegistrar) {},
			expectedStatus: http.StatusBadRequest,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, "field Password2 must match field Password")
			},
		},
		{
			name:           "Invalid role",
			requestBody:    `{"username": "ravi", "email": "ravi@example.com", "password": "hunter22", "password2": "hunter22", "role": "admin"}`,
			mockSetup:      func(m *mocks.UserRegistrar) {},
			expectedStatus: http.StatusBadRequest,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, "field Role must be one of: student owner")
			},
		},
		{
			name:        "Duplicate email",
			requestBody: `{"username": "ravi", "email": "taken@example.com", "password": "hunter22", "password2": "hunter22", "role": "student"}`,
			mockSetup: func(m *mocks.UserRegistrar) {
				m.On("Signup", mock.Anything, "ravi", "taken@example.com", "hunter22", models.RoleStudent).
					Return(int64(0), storage.ErrEmailTaken)
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"the email \"taken@example.com\" is already in use"}`,
		},
		{
			name:        "Internal server error",
			requestBody: `{"username": "ravi", "email": "ravi@example.com", "password": "hunter22", "password2": "hunter22", "role": "student"}`,
			mockSetup: func(m *mocks.UserRegistrar) {
				m.On("Signup", mock.Anything, "ravi", "ravi@example.com", "hunter22", models.RoleStudent).
					Return(int64(0), assert.AnError)
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"something went wrong"}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mockRegistrar := mocks.NewUserRegistrar(t)
			tc.mockSetup(mockRegistrar)

			handler := New(logger, mockRegistrar)

			req, err := http.NewRequest("POST", "/auth/signup", bytes.NewBufferString(tc.requestBody))
			require.NoError(t, err)

			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code, "Status code mismatch")

			if tc.expectedBody != "" {
				assert.JSONEq(t, tc.expectedBody, rr.Body.String(), "Response body mismatch")
			} else if tc.checkBody != nil {
				tc.checkBody(t, rr.Body.String())
			}
		})
	}
}
