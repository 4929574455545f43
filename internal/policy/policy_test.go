package policy

import (
	"testing"

	"pgBooker/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestCanCreateListing(t *testing.T) {
	t.Parallel()

	ok, reason := CanCreateListing(models.Actor{ID: 1, Role: models.RoleOwner})
	assert.True(t, ok)
	assert.Equal(t, ReasonAllowed, reason)

	ok, reason = CanCreateListing(models.Actor{ID: 2, Role: models.RoleStudent})
	assert.False(t, ok)
	assert.Equal(t, ReasonOwnersOnly, reason)
}

func TestCanEditListing(t *testing.T) {
	t.Parallel()

	listing := &models.Listing{ID: 10, OwnerID: 1}

	ok, _ := CanEditListing(models.Actor{ID: 1, Role: models.RoleOwner}, listing)
	assert.True(t, ok)

	ok, reason := CanEditListing(models.Actor{ID: 2, Role: models.RoleOwner}, listing)
	assert.False(t, ok)
	assert.Equal(t, ReasonNotListingOwner, reason)
}

func TestCanBook(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name       string
		actor      models.Actor
		listing    *models.Listing
		wantOK     bool
		wantReason Reason
	}{
		{
			name:       "student books listing with rooms",
			actor:      models.Actor{ID: 5, Role: models.RoleStudent},
			listing:    &models.Listing{ID: 1, RoomsAvailable: 2},
			wantOK:     true,
			wantReason: ReasonAllowed,
		},
		{
			name:       "unauthenticated actor",
			actor:      models.Actor{},
			listing:    &models.Listing{ID: 1, RoomsAvailable: 2},
			wantOK:     false,
			wantReason: ReasonNotAuthenticated,
		},
		{
			name:       "no rooms left",
			actor:      models.Actor{ID: 5, Role: models.RoleStudent},
			listing:    &models.Listing{ID: 1, RoomsAvailable: 0},
			wantOK:     false,
			wantReason: ReasonNoRoomsAvailable,
		},
		{
			name:       "owner can book too",
			actor:      models.Actor{ID: 7, Role: models.RoleOwner},
			listing:    &models.Listing{ID: 1, RoomsAvailable: 1},
			wantOK:     true,
			wantReason: ReasonAllowed,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			ok, reason := CanBook(tc.actor, tc.listing)
			assert.Equal(t, tc.wantOK, ok)
			assert.Equal(t, tc.wantReason, reason)
		})
	}
}

func TestCanCancel(t *testing.T) {
	t.Parallel()

	booking := &models.Booking{ID: 3, UserID: 5}

	ok, _ := CanCancel(models.Actor{ID: 5, Role: models.RoleStudent}, booking)
	assert.True(t, ok)

	ok, reason := CanCancel(models.Actor{ID: 6, Role: models.RoleStudent}, booking)
	assert.False(t, ok)
	assert.Equal(t, ReasonNotBookingOwner, reason)

	// the listing owner is not the booking owner either
	ok, reason = CanCancel(models.Actor{ID: 1, Role: models.RoleOwner}, booking)
	assert.False(t, ok)
	assert.Equal(t, ReasonNotBookingOwner, reason)
}

func TestCanViewOwnerBookings(t *testing.T) {
	t.Parallel()

	ok, _ := CanViewOwnerBookings(models.Actor{ID: 1, Role: models.RoleOwner})
	assert.True(t, ok)

	ok, reason := CanViewOwnerBookings(models.Actor{ID: 2, Role: models.RoleStudent})
	assert.False(t, ok)
	assert.Equal(t, ReasonOwnersOnly, reason)
}

func TestCanConfirmBooking(t *testing.T) {
	t.Parallel()

	ok, _ := CanConfirmBooking(models.Actor{ID: 1, Role: models.RoleOwner}, 1)
	assert.True(t, ok)

	ok, reason := CanConfirmBooking(models.Actor{ID: 2, Role: models.RoleOwner}, 1)
	assert.False(t, ok)
	assert.Equal(t, ReasonNotListingOwner, reason)
}
