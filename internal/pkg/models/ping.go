package models

import (
	"time"

	"github.com/google/uuid"
)

// LocationPing is a timestamped location report submitted by a driver's
// client. Pings are append-only: never mutated or deleted by the core.
type LocationPing struct {
	ID        int64      `json:"id" db:"id"`
	DriverID  uuid.UUID  `json:"driver_id" db:"driver_id"`
	Latitude  float64    `json:"latitude" db:"latitude"`
	Longitude float64    `json:"longitude" db:"longitude"`
	AccuracyM *float64  `json:"accuracy_m,omitempty" db:"accuracy_m"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// DriverPing is the latest known position of one driver within the staleness
// window, as returned by the ping store's latest-per-driver query.
type DriverPing struct {
	DriverID  uuid.UUID `json:"driver_id" db:"driver_id"`
	Latitude  float64   `json:"latitude" db:"latitude"`
	Longitude float64   `json:"longitude" db:"longitude"`
	AccuracyM *float64  `json:"accuracy_m,omitempty" db:"accuracy_m"`
	PingedAt  time.Time `json:"pinged_at" db:"pinged_at"`
}

// NearbyDriver is a fresh-pinged driver with its distance to a reference
// point, used by the nearby-drivers read path.
type NearbyDriver struct {
	DriverID   uuid.UUID `json:"driver_id"`
	Latitude   float64   `json:"latitude"`
	Longitude  float64   `json:"longitude"`
	AccuracyM  *float64  `json:"accuracy_m,omitempty"`
	DistanceKm float64   `json:"distance_km"`
	PingedAt   time.Time `json:"pinged_at"`
}
