package mwauth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"pgBooker/internal/lib/jwt"
	"pgBooker/internal/lib/logger/handlers/slogdiscard"
	"pgBooker/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func TestAuthMiddleware(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	user := &models.User{ID: 5, Role: models.RoleStudent}

	validToken, err := jwt.NewToken(user, testSecret, time.Hour)
	require.NoError(t, err)

	expiredToken, err := jwt.NewToken(user, testSecret, -time.Hour)
	require.NoError(t, err)

	testCases := []struct {
		name           string
		authHeader     string
		expectedStatus int
		wantActor      bool
	}{
		{
			name:           "Valid token",
			authHeader:     "Bearer " + validToken,
			expectedStatus: http.StatusOK,
			wantActor:      true,
		},
		{
			name:           "Missing header",
			authHeader:     "",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "Not a bearer token",
			authHeader:     "Basic dXNlcjpwYXNz",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "Garbage token",
			authHeader:     "Bearer not.a.token",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "Expired token",
			authHeader:     "Bearer " + expiredToken,
			expectedStatus: http.StatusUnauthorized,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			var gotActor models.Actor
			var actorPresent bool

			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotActor, actorPresent = Actor(r.Context())
				w.WriteHeader(http.StatusOK)
			})

			handler := New(logger, testSecret)(next)

			req, err := http.NewRequest("GET", "/my-bookings", nil)
			require.NoError(t, err)
			if tc.authHeader != "" {
				req.Header.Set("Authorization", tc.authHeader)
			}

			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)

			if tc.wantActor {
				assert.True(t, actorPresent)
				assert.Equal(t, models.Actor{ID: 5, Role: models.RoleStudent}, gotActor)
			} else {
				assert.False(t, actorPresent)
			}
		})
	}
}
