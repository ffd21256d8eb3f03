package models

import "github.com/google/uuid"

// RideRequest is the inbound payload for creating a ride. PassengerID is only
// honored for admin actors; everyone else requests for themselves. A Seats of
// zero means omitted and defaults to 1.
type RideRequest struct {
	PassengerID        *uuid.UUID `json:"passenger_id,omitempty"`
	OriginLat          float64    `json:"origin_lat"`
	OriginLng          float64    `json:"origin_lng"`
	OriginAddress      string     `json:"origin_address"`
	DestinationLat     float64    `json:"destination_lat"`
	DestinationLng     float64    `json:"destination_lng"`
	DestinationAddress string     `json:"destination_address"`
	Seats              int        `json:"seats"`
}
