// Package policy holds the access decisions for listings and bookings.
// Every function is pure: it looks at the actor and the entity, returns
// whether the action is allowed and, when it is not, a reason the caller
// can show the user. Denial is a value here, never an error.
package policy

import "pgBooker/internal/models"

type Reason string

const (
	ReasonAllowed          Reason = ""
	ReasonNotAuthenticated Reason = "please log in to continue"
	ReasonOwnersOnly       Reason = "only owners can do this"
	ReasonNotListingOwner  Reason = "not authorized to change this listing"
	ReasonNotBookingOwner  Reason = "not authorized to cancel this booking"
	ReasonNoRoomsAvailable Reason = "no rooms available for booking"
)

func (r Reason) String() string {
	return string(r)
}

func CanCreateListing(actor models.Actor) (bool, Reason) {
	if actor.Role != models.RoleOwner {
		return false, ReasonOwnersOnly
	}
	return true, ReasonAllowed
}

func CanEditListing(actor models.Actor, listing *models.Listing) (bool, Reason) {
	if actor.ID != listing.OwnerID {
		return false, ReasonNotListingOwner
	}
	return true, ReasonAllowed
}

func CanBook(actor models.Actor, listing *models.Listing) (bool, Reason) {
	if actor.ID == 0 {
		return false, ReasonNotAuthenticated
	}
	if listing.RoomsAvailable <= 0 {
		return false, ReasonNoRoomsAvailable
	}
	return true, ReasonAllowed
}

func CanCancel(actor models.Actor, booking *models.Booking) (bool, Reason) {
	if actor.ID != booking.UserID {
		return false, ReasonNotBookingOwner
	}
	return true, ReasonAllowed
}

func CanViewOwnerBookings(actor models.Actor) (bool, Reason) {
	if actor.Role != models.RoleOwner {
		return false, ReasonOwnersOnly
	}
	return true, ReasonAllowed
}

// CanConfirmBooking gates the owner-confirms step: only the owner of the
// listing the booking claims may confirm it.
func CanConfirmBooking(actor models.Actor, listingOwnerID int64) (bool, Reason) {
	if actor.ID != listingOwnerID {
		return false, ReasonNotListingOwner
	}
	return true, ReasonAllowed
}
