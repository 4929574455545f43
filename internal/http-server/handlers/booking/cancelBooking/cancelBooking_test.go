package cancelBooking

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"pgBooker/internal/http-server/handlers/booking/cancelBooking/mocks"
	"pgBooker/internal/http-server/middleware/mwauth"
	"pgBooker/internal/lib/logger/handlers/slogdiscard"
	"pgBooker/internal/models"
	"pgBooker/internal/policy"
	"pgBooker/internal/service/booking"
	"pgBooker/internal/storage"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCancelBookingHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()
	student := models.Actor{ID: 5, Role: models.RoleStudent}

	testCases := []struct {
		name           string
		bookingID      string
		actor          *models.Actor
		mockSetup      func(mock *mocks.Canceller)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:      "Success",
			bookingID: "3",
			actor:     &student,
			mockSetup: func(m *mocks.Canceller) {
				m.On("Cancel", mock.Anything, student, int64(3)).Return(nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"status":"OK","message":"booking cancelled successfully"}`,
		},
		{
			name:           "Invalid booking ID format",
			bookingID:      "abc",
			actor:          &student,
			mockSetup:      func(m *mocks.Canceller) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"invalid booking id format"}`,
		},
		{
			name:           "Unauthenticated",
			bookingID:      "3",
			actor:          nil,
			mockSetup:      func(m *mocks.Canceller) {},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `{"status":"Error","error":"please log in to continue"}`,
		},
		{
			name:      "Booking not found",
			bookingID: "99",
			actor:     &student,
			mockSetup: func(m *mocks.Canceller) {
				m.On("Cancel", mock.Anything, student, int64(99)).
					Return(storage.ErrBookingNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"status":"Error","error":"booking not found"}`,
		},
		{
			name:      "Not the booking owner",
			bookingID: "3",
			actor:     &student,
			mockSetup: func(m *mocks.Canceller) {
				m.On("Cancel", mock.Anything, student, int64(3)).
					Return(&booking.AccessDeniedError{Reason: policy.ReasonNotBookingOwner})
			},
			expectedStatus: http.StatusForbidden,
			expectedBody:   `{"status":"Error","error":"not authorized to cancel this booking"}`,
		},
		{
			name:      "Internal server error",
			bookingID: "3",
			actor:     &student,
			mockSetup: func(m *mocks.Canceller) {
				m.On("Cancel", mock.Anything, student, int64(3)).Return(assert.AnError)
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"something went wrong"}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mockCanceller := mocks.NewCanceller(t)
			tc.mockSetup(mockCanceller)

			handler := New(logger, mockCanceller)

			req, err := http.NewRequest("POST", "/bookings/"+tc.bookingID+"/cancel", bytes.NewBufferString("{}"))
			require.NoError(t, err)

			if tc.actor != nil {
				req = req.WithContext(mwauth.WithActor(req.Context(), *tc.actor))
			}

			router := chi.NewRouter()
			router.Route("/bookings", func(r chi.Router) {
				r.Route("/{id}", func(r chi.Router) {
					r.Post("/cancel", handler)
				})
			})

			rr := httptest.NewRecorder()

			router.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code, "Status code mismatch")
			assert.JSONEq(t, tc.expectedBody, rr.Body.String(), "Response body mismatch")
		})
	}
}
