package confirmBooking

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"pgBooker/internal/http-server/handlers/booking/confirmBooking/mocks"
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

func TestConfirmBookingHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()
	owner := models.Actor{ID: 2, Role: models.RoleOwner}

	testCases := []struct {
		name           string
		bookingID      string
		actor          *models.Actor
		mockSetup      func(mock *mocks.Confirmer)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:      "Success",
			bookingID: "3",
			actor:     &owner,
			mockSetup: func(m *mocks.Confirmer) {
				m.On("Confirm", mock.Anything, owner, int64(3)).Return(nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"status":"OK","message":"booking confirmed successfully"}`,
		},
		{
			name:      "Booking not found",
			bookingID: "99",
			actor:     &owner,
			mockSetup: func(m *mocks.Confirmer) {
				m.On("Confirm", mock.Anything, owner, int64(99)).
					Return(storage.ErrBookingNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"status":"Error","error":"booking not found"}`,
		},
		{
			name:      "Already confirmed",
			bookingID: "3",
			actor:     &owner,
			mockSetup: func(m *mocks.Confirmer) {
				m.On("Confirm", mock.Anything, owner, int64(3)).
					Return(storage.ErrBookingNotPending)
			},
			expectedStatus: http.StatusConflict,
			expectedBody:   `{"status":"Error","error":"booking is not pending"}`,
		},
		{
			name:      "Not the listing owner",
			bookingID: "3",
			actor:     &owner,
			mockSetup: func(m *mocks.Confirmer) {
				m.On("Confirm", mock.Anything, owner, int64(3)).
					Return(&booking.AccessDeniedError{Reason: policy.ReasonNotListingOwner})
			},
			expectedStatus: http.StatusForbidden,
			expectedBody:   `{"status":"Error","error":"not authorized to change this listing"}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mockConfirmer := mocks.NewConfirmer(t)
			tc.mockSetup(mockConfirmer)

			handler := New(logger, mockConfirmer)

			req, err := http.NewRequest("POST", "/bookings/"+tc.bookingID+"/confirm", bytes.NewBufferString("{}"))
			require.NoError(t, err)

			if tc.actor != nil {
				req = req.WithContext(mwauth.WithActor(req.Context(), *tc.actor))
			}

			router := chi.NewRouter()
			router.Route("/bookings", func(r chi.Router) {
				r.Route("/{id}", func(r chi.Router) {
					r.Post("/confirm", handler)
				})
			})

			rr := httptest.NewRecorder()

			router.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code, "Status code mismatch")
			assert.JSONEq(t, tc.expectedBody, rr.Body.String(), "Response body mismatch")
		})
	}
}
