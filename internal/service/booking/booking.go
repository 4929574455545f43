// Package booking orchestrates the booking lifecycle: it consults the
// access policy, then drives the listing store and the booking ledger.
// The inventory arithmetic itself lives in a single storage transaction,
// so a book or cancel is atomic from the caller's point of view.
package booking

import (
	"context"
	"errors"
	"fmt"

	"pgBooker/internal/models"
	"pgBooker/internal/policy"
	"pgBooker/internal/storage"
)

// AccessDeniedError is a policy denial carried as a value. It is an
// expected outcome, distinct from a storage failure.
type AccessDeniedError struct {
	Reason policy.Reason
}

func (e *AccessDeniedError) Error() string {
	return string(e.Reason)
}

func denied(reason policy.Reason) error {
	return &AccessDeniedError{Reason: reason}
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=ListingStore
type ListingStore interface {
	GetListing(ctx context.Context, id int64) (*models.Listing, error)
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=Ledger
type Ledger interface {
	BookListing(ctx context.Context, listingID, userID int64) (*models.Booking, error)
	GetBooking(ctx context.Context, id int64) (*models.Booking, error)
	CancelBooking(ctx context.Context, bookingID, userID int64) error
	ConfirmBooking(ctx context.Context, bookingID int64) error
	BookingsByUser(ctx context.Context, userID int64) ([]models.BookingDetail, error)
	BookingsForOwner(ctx context.Context, ownerID int64) ([]models.BookingDetail, error)
}

type Service struct {
	listings ListingStore
	ledger   Ledger
}

func New(listings ListingStore, ledger Ledger) *Service {
	return &Service{
		listings: listings,
		ledger:   ledger,
	}
}

// Book claims one room on the listing for the actor. The policy gate is
// advisory (it produces the user-facing denial); the real race on the
// last room is settled by the conditional decrement inside BookListing,
// which returns storage.ErrNoRoomsAvailable to the loser.
func (s *Service) Book(ctx context.Context, actor models.Actor, listingID int64) (*models.Booking, error) {
	listing, err := s.listings.GetListing(ctx, listingID)
	if err != nil {
		if errors.Is(err, storage.ErrListingNotFound) {
			return nil, storage.ErrListingNotFound
		}
		return nil, fmt.Errorf("failed to get listing: %w", err)
	}

	if ok, reason := policy.CanBook(actor, listing); !ok {
		return nil, denied(reason)
	}

	booking, err := s.ledger.BookListing(ctx, listingID, actor.ID)
	if err != nil {
		if errors.Is(err, storage.ErrNoRoomsAvailable) || errors.Is(err, storage.ErrListingNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to book listing: %w", err)
	}

	return booking, nil
}

// Cancel removes the actor's booking and restores the room it claimed.
func (s *Service) Cancel(ctx context.Context, actor models.Actor, bookingID int64) error {
	booking, err := s.ledger.GetBooking(ctx, bookingID)
	if err != nil {
		if errors.Is(err, storage.ErrBookingNotFound) {
			return storage.ErrBookingNotFound
		}
		return fmt.Errorf("failed to get booking: %w", err)
	}

	if ok, reason := policy.CanCancel(actor, booking); !ok {
		return denied(reason)
	}

	if err = s.ledger.CancelBooking(ctx, bookingID, actor.ID); err != nil {
		if errors.Is(err, storage.ErrBookingNotFound) {
			return storage.ErrBookingNotFound
		}
		return fmt.Errorf("failed to cancel booking: %w", err)
	}

	return nil
}

// Confirm flips a pending booking to confirmed. Only the owner of the
// listing the booking claims may do it.
func (s *Service) Confirm(ctx context.Context, actor models.Actor, bookingID int64) error {
	booking, err := s.ledger.GetBooking(ctx, bookingID)
	if err != nil {
		if errors.Is(err, storage.ErrBookingNotFound) {
			return storage.ErrBookingNotFound
		}
		return fmt.Errorf("failed to get booking: %w", err)
	}

	listing, err := s.listings.GetListing(ctx, booking.ListingID)
	if err != nil {
		if errors.Is(err, storage.ErrListingNotFound) {
			return storage.ErrListingNotFound
		}
		return fmt.Errorf("failed to get listing: %w", err)
	}

	if ok, reason := policy.CanConfirmBooking(actor, listing.OwnerID); !ok {
		return denied(reason)
	}

	if err = s.ledger.ConfirmBooking(ctx, bookingID); err != nil {
		if errors.Is(err, storage.ErrBookingNotFound) || errors.Is(err, storage.ErrBookingNotPending) {
			return err
		}
		return fmt.Errorf("failed to confirm booking: %w", err)
	}

	return nil
}

// UserBookings lists the actor's own bookings.
func (s *Service) UserBookings(ctx context.Context, actor models.Actor) ([]models.BookingDetail, error) {
	bookings, err := s.ledger.BookingsByUser(ctx, actor.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get bookings: %w", err)
	}

	return bookings, nil
}

// OwnerBookings lists every booking placed against the actor's listings.
func (s *Service) OwnerBookings(ctx context.Context, actor models.Actor) ([]models.BookingDetail, error) {
	if ok, reason := policy.CanViewOwnerBookings(actor); !ok {
		return nil, denied(reason)
	}

	bookings, err := s.ledger.BookingsForOwner(ctx, actor.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get bookings: %w", err)
	}

	return bookings, nil
}
