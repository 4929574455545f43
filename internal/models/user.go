package models

import "time"

// Role is the closed set of account roles. It is fixed at signup and
// never changes afterwards.
type Role string

const (
	RoleStudent Role = "student"
	RoleOwner   Role = "owner"
)

func (r Role) Valid() bool {
	return r == RoleStudent || r == RoleOwner
}

type User struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
}

// Actor is the authenticated identity attached to a request. It carries
// only what access decisions need.
type Actor struct {
	ID   int64 `json:"id"`
	Role Role  `json:"role"`
}
