package models

import "time"

// BookingStatus is the booking lifecycle state. A cancelled booking is
// removed from the ledger, so StatusCancelled never reaches storage; it
// exists for wire compatibility with clients that render the enum.
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCancelled BookingStatus = "cancelled"
)

type Booking struct {
	ID        int64         `json:"id"`
	UserID    int64         `json:"user_id"`
	ListingID int64         `json:"listing_id"`
	BookedAt  time.Time     `json:"booked_at"`
	Status    BookingStatus `json:"status"`
}

// BookingDetail is a ledger row joined with the names a booking list
// needs to render: the listing it claims and, for owner views, who
// placed it.
type BookingDetail struct {
	Booking
	ListingTitle string `json:"listing_title"`
	Username     string `json:"username,omitempty"`
}
