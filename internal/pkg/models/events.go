package models

import (
	"time"

	"github.com/google/uuid"
)

// RideEventKind labels a lifecycle transition carried by a ride event.
type RideEventKind string

const (
	RideEventRequested  RideEventKind = "requested"
	RideEventAssigned   RideEventKind = "assigned"
	RideEventAccepted   RideEventKind = "accepted"
	RideEventStarted    RideEventKind = "started"
	RideEventCompleted  RideEventKind = "completed"
	RideEventCancelled  RideEventKind = "cancelled"
	RideEventRejected   RideEventKind = "rejected"
	RideEventReassigned RideEventKind = "reassigned"
	RideEventExpired    RideEventKind = "expired"
)

// RideEvent is the payload published to the notification gateway on every
// lifecycle transition. Delivery is fire-and-forget; a failed publish never
// rolls back the transition.
type RideEvent struct {
	Kind      RideEventKind `json:"kind"`
	Ride      *Ride         `json:"ride"`
	Timestamp time.Time     `json:"timestamp"`
}

// PingEvent is the internal event emitted for every recorded ping; the
// dispatch consumer uses it to trigger the opportunistic match.
type PingEvent struct {
	DriverID  uuid.UUID `json:"driver_id"`
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	AccuracyM *float64  `json:"accuracy_m,omitempty"`
	PingedAt  time.Time `json:"pinged_at"`
}

// DriverLocationEvent mirrors a driver ping to ride subscribers. Only sent for
// drivers currently assigned to an active ride.
type DriverLocationEvent struct {
	DriverID  uuid.UUID `json:"driver_id"`
	RideID    uuid.UUID `json:"ride_id"`
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	AccuracyM *float64  `json:"accuracy_m,omitempty"`
	PingedAt  time.Time `json:"pinged_at"`
}
