package location

import (
	"context"

	"github.com/google/uuid"
	"github.com/vaipaqueta/dispatch/internal/pkg/models"
)

// LocationRepo defines the interface for ping persistence. The log in
// PostgreSQL is the source of truth; Redis carries the latest position per
// driver for the nearby-drivers geo search.
//
//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/vaipaqueta/dispatch/services/location LocationRepo,RideReader,ProfileReader
type LocationRepo interface {
	// RecordPing appends the ping to the log and mirrors it as the
	// driver's latest position.
	RecordPing(ctx context.Context, ping *models.LocationPing) error

	// NearbyDrivers searches the latest-position geo index.
	NearbyDrivers(ctx context.Context, lat, lng, radiusKm float64, limit int) ([]models.NearbyDriver, error)
}

// RideReader is the slice of the ride store the location service reads:
// whether a driver is currently serving a ride.
type RideReader interface {
	ActiveRideByDriver(ctx context.Context, driverID uuid.UUID) (*models.Ride, error)
}

// ProfileReader reads profiles owned by the account system.
type ProfileReader interface {
	GetProfile(ctx context.Context, profileID uuid.UUID) (*models.Profile, error)
}
