package models

import "time"

// Gender is the tenant restriction on a PG listing.
type Gender string

const (
	GenderGirls Gender = "girls"
	GenderBoys  Gender = "boys"
)

func (g Gender) Valid() bool {
	return g == GenderGirls || g == GenderBoys
}

type Listing struct {
	ID             int64     `json:"id"`
	OwnerID        int64     `json:"owner_id"`
	Title          string    `json:"title"`
	Gender         Gender    `json:"gender"`
	Description    string    `json:"description,omitempty"`
	Address        string    `json:"address"`
	Wifi           bool      `json:"wifi"`
	MonthlyFees    float64   `json:"monthly_fees"`
	FoodFees       float64   `json:"food_fees,omitempty"`
	RoomsAvailable int       `json:"rooms_available"`
	Images         []string  `json:"images"`
	PostedAt       time.Time `json:"posted_at"`
}

// ListingFilter narrows listing searches. Zero values mean "no restriction";
// Address matches as a case-insensitive substring.
type ListingFilter struct {
	Gender  Gender
	Address string
}
