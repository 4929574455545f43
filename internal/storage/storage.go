package storage

import "errors"

var (
	ErrUserNotFound    = errors.New("user not found")
	ErrEmailTaken      = errors.New("email is already registered")
	ErrListingNotFound = errors.New("listing not found")
	ErrBookingNotFound = errors.New("booking not found")

	// ErrNoRoomsAvailable reports that the conditional decrement found the
	// counter already at zero. Callers treat it as a conflict, not a storage
	// failure: a concurrent booking simply won the last room.
	ErrNoRoomsAvailable = errors.New("no rooms available")

	// ErrBookingNotPending reports a confirm attempt on a booking that is
	// not in the pending state.
	ErrBookingNotPending = errors.New("booking is not pending")
)
