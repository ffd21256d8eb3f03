package models

import (
	"time"

	"github.com/google/uuid"
)

// ProfileKind distinguishes the two parties of a ride
type ProfileKind string

const (
	ProfileKindPassenger ProfileKind = "passenger"
	ProfileKindDriver    ProfileKind = "driver"
)

// Profile represents a party to rides (passenger or driver).
// Profiles are owned by the account system; the dispatch core only reads them.
type Profile struct {
	ID        uuid.UUID   `json:"id" db:"id"`
	Kind      ProfileKind `json:"kind" db:"kind"`
	Name      string      `json:"name" db:"name"`
	Phone     string      `json:"phone,omitempty" db:"phone"`
	Platform  string      `json:"platform,omitempty" db:"platform"`
	CreatedAt time.Time   `json:"created_at" db:"created_at"`
	UpdatedAt time.Time   `json:"updated_at" db:"updated_at"`
}

// Actor is an already-authorized caller of the dispatch core. Authorization
// happens at the transport boundary; Admin marks the staff capability that may
// act on behalf of any profile.
type Actor struct {
	ProfileID uuid.UUID `json:"profile_id"`
	Admin     bool      `json:"admin"`
}
