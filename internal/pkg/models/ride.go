package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// RideStatus represents the status of a ride
type RideStatus string

const (
	RideStatusWaiting    RideStatus = "waiting"
	RideStatusAccepted   RideStatus = "accepted"
	RideStatusInProgress RideStatus = "in_progress"
	RideStatusCompleted  RideStatus = "completed"
	RideStatusCancelled  RideStatus = "cancelled"
	RideStatusRejected   RideStatus = "rejected"
)

// ActiveRideStatuses are the statuses in which a ride still occupies its
// passenger and (when assigned) its driver.
var ActiveRideStatuses = []RideStatus{RideStatusWaiting, RideStatusAccepted, RideStatusInProgress}

// IsActive reports whether the status is one of waiting/accepted/in_progress.
func (s RideStatus) IsActive() bool {
	return s == RideStatusWaiting || s == RideStatusAccepted || s == RideStatusInProgress
}

// IsTerminal reports whether the status ends the ride lifecycle.
func (s RideStatus) IsTerminal() bool {
	return s == RideStatusCompleted || s == RideStatusCancelled
}

// MaxTriedDrivers caps the tried-driver set per ride; oldest entries are
// evicted first once the cap is reached.
const MaxTriedDrivers = 50

// TriedDrivers is the ordered set of drivers already offered a ride. It
// guarantees termination of the reassignment loop and bounds storage.
type TriedDrivers []uuid.UUID

// Contains reports whether the driver has already been tried.
func (t TriedDrivers) Contains(id uuid.UUID) bool {
	for _, d := range t {
		if d == id {
			return true
		}
	}
	return false
}

// Add appends a driver to the set, deduplicating and evicting the oldest
// entries beyond MaxTriedDrivers.
func (t *TriedDrivers) Add(id uuid.UUID) {
	if t.Contains(id) {
		return
	}
	next := append(*t, id)
	if len(next) > MaxTriedDrivers {
		next = next[len(next)-MaxTriedDrivers:]
	}
	*t = next
}

// Value serializes the set as a JSON array for the jsonb column.
func (t TriedDrivers) Value() (driver.Value, error) {
	if t == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(t)
}

// Scan reads the jsonb column back into the set.
func (t *TriedDrivers) Scan(src interface{}) error {
	if src == nil {
		*t = nil
		return nil
	}
	var raw []byte
	switch v := src.(type) {
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("unsupported tried_drivers source type %T", src)
	}
	return json.Unmarshal(raw, t)
}

// Coordinate is a latitude/longitude pair in degrees.
type Coordinate struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Ride is the central dispatch entity: one passenger transport request and its
// lifecycle record. Mutated exclusively by the lifecycle controller under the
// per-ride row lock; never deleted (terminal rides are kept for audit).
type Ride struct {
	ID           uuid.UUID    `json:"id" db:"id"`
	PassengerID  uuid.UUID    `json:"passenger_id" db:"passenger_id"`
	DriverID     *uuid.UUID   `json:"driver_id,omitempty" db:"driver_id"`
	Status       RideStatus   `json:"status" db:"status"`
	Seats        int          `json:"seats" db:"seats"`
	OriginLat    float64      `json:"origin_lat" db:"origin_lat"`
	OriginLng    float64      `json:"origin_lng" db:"origin_lng"`
	OriginAddr   string       `json:"origin_address,omitempty" db:"origin_address"`
	DestLat      float64      `json:"destination_lat" db:"destination_lat"`
	DestLng      float64      `json:"destination_lng" db:"destination_lng"`
	DestAddr     string       `json:"destination_address,omitempty" db:"destination_address"`
	TriedDrivers TriedDrivers `json:"tried_drivers" db:"tried_drivers"`
	CreatedAt    time.Time    `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at" db:"updated_at"`
	AcceptedAt   *time.Time   `json:"accepted_at,omitempty" db:"accepted_at"`
	StartedAt    *time.Time   `json:"started_at,omitempty" db:"started_at"`
	CompletedAt  *time.Time   `json:"completed_at,omitempty" db:"completed_at"`
	CancelledAt  *time.Time   `json:"cancelled_at,omitempty" db:"cancelled_at"`
}

// Origin returns the pickup coordinate.
func (r *Ride) Origin() Coordinate {
	return Coordinate{Latitude: r.OriginLat, Longitude: r.OriginLng}
}

// AssignedTo reports whether the ride is currently assigned to the driver.
func (r *Ride) AssignedTo(driverID uuid.UUID) bool {
	return r.DriverID != nil && *r.DriverID == driverID
}

// ClearDriver removes the tentative driver assignment.
func (r *Ride) ClearDriver() {
	r.DriverID = nil
}
