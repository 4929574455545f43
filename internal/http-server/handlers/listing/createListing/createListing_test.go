package createListing

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"pgBooker/internal/http-server/handlers/listing/createListing/mocks"
	"pgBooker/internal/http-server/middleware/mwauth"
	"pgBooker/internal/lib/logger/handlers/slogdiscard"
	"pgBooker/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateListingHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()
	owner := models.Actor{ID: 2, Role: models.RoleOwner}
	student := models.Actor{ID: 5, Role: models.RoleStudent}

	validBody := `{
		"title": "Sunrise PG",
		"gender": "girls",
		"description": "near the metro",
		"address": "12 MG Road, Bengaluru",
		"wifi": true,
		"monthly_fees": 8500,
		"food_fees": 2000,
		"rooms_available": 3
	}`

	testCases := []struct {
		name           string
		actor          *models.Actor
		requestBody    string
		mockSetup      func(mock *mocks.ListingSaver)
		expectedStatus int
		expectedBody   string
		checkBody      func(t *testing.T, body string)
	}{
		{
			name:        "Success",
			actor:       &owner,
			requestBody: validBody,
			mockSetup: func(m *mocks.ListingSaver) {
				m.On("SaveListing", mock.Anything, mock.MatchedBy(func(l *models.Listing) bool {
					return l.OwnerID == 2 &&
						l.Title == "Sunrise PG" &&
						l.Gender == models.GenderGirls &&
						l.RoomsAvailable == 3
				})).Return(int64(10), nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"status":"OK","message":"PG listing added successfully","listing_id":10}`,
		},
		{
			name:           "Student denied",
			actor:          &student,
			requestBody:    validBody,
			mockSetup:      func(m *mocks.ListingSaver) {},
			expectedStatus: http.StatusForbidden,
			expectedBody:   `{"status":"Error","error":"only owners can do this"}`,
		},
		{
			name:           "Unauthenticated",
			actor:          nil,
			requestBody:    validBody,
			mockSetup:      func(m *mocks.ListingSaver) {},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `{"status":"Error","error":"please log in to continue"}`,
		},
		{
			name:           "Missing required fields",
			actor:          &owner,
			requestBody:    `{"wifi": true}`,
			mockSetup:      func(m *mocks.ListingSaver) {},
			expectedStatus: http.StatusBadRequest,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, `"status":"Error"`)
				assert.Contains(t, body, "Title")
				assert.Contains(t, body, "Gender")
				assert.Contains(t, body, "Address")
			},
		},
		{
			name:           "Invalid gender",
			actor:          &owner,
			requestBody:    `{"title": "x", "gender": "coed", "address": "y", "monthly_fees": 5000}`,
			mockSetup:      func(m *mocks.ListingSaver) {},
			expectedStatus: http.StatusBadRequest,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, "field Gender must be one of: girls boys")
			},
		},
		{
			name:           "Negative rooms",
			actor:          &owner,
			requestBody:    `{"title": "x", "gender": "boys", "address": "y", "monthly_fees": 5000, "rooms_available": -1}`,
			mockSetup:      func(m *mocks.ListingSaver) {},
			expectedStatus: http.StatusBadRequest,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, "field RoomsAvailable must be 0 or greater")
			},
		},
		{
			name:        "Internal server error",
			actor:       &owner,
			requestBody: validBody,
			mockSetup: func(m *mocks.ListingSaver) {
				m.On("SaveListing", mock.Anything, mock.Anything).
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

			mockSaver := mocks.NewListingSaver(t)
			tc.mockSetup(mockSaver)

			handler := New(logger, mockSaver)

			req, err := http.NewRequest("POST", "/listings", bytes.NewBufferString(tc.requestBody))
			require.NoError(t, err)

			if tc.actor != nil {
				req = req.WithContext(mwauth.WithActor(req.Context(), *tc.actor))
			}

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
