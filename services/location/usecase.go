package location

import (
	"context"

	"github.com/google/uuid"
	"github.com/vaipaqueta/dispatch/internal/pkg/models"
)

// PingSubmission is the inbound payload for a driver location report.
type PingSubmission struct {
	DriverID  *uuid.UUID `json:"driver_id,omitempty"`
	Latitude  float64    `json:"latitude"`
	Longitude float64    `json:"longitude"`
	AccuracyM *float64   `json:"accuracy_m,omitempty"`
}

// LocationUC defines the interface for location business logic
//
//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/vaipaqueta/dispatch/services/location LocationUC
type LocationUC interface {
	// SubmitPing records a driver location report. Recording always wins:
	// event publication failures never surface to the submitting driver.
	SubmitPing(ctx context.Context, actor models.Actor, sub *PingSubmission) (*models.LocationPing, error)

	// NearbyDrivers returns fresh-pinged drivers around a point, nearest
	// first.
	NearbyDrivers(ctx context.Context, lat, lng, radiusKm float64, limit int) ([]models.NearbyDriver, error)
}
