package rides

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/vaipaqueta/dispatch/internal/pkg/models"
)

// RideMutator is applied to a ride while its row lock is held. It returns
// save=true when the mutated ride must be written back; the write and commit
// happen even when the mutator also returns a business error, so guard
// failures that piggyback on a state repair (e.g. the expiry check) still
// persist the repair.
type RideMutator func(ctx context.Context, ride *models.Ride) (save bool, err error)

// RideRepo defines the interface for ride data access operations
//
//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/vaipaqueta/dispatch/services/rides RideRepo,PingRepo,ProfileRepo
type RideRepo interface {
	// CreateRequestedRide inserts a new waiting ride, guarding inside the
	// insert against the passenger already holding an active ride.
	CreateRequestedRide(ctx context.Context, ride *models.Ride) error

	GetRide(ctx context.Context, rideID uuid.UUID) (*models.Ride, error)

	// WithRideLock runs fn on the ride row under an exclusive row lock
	// spanning the read-modify-write, returning the final ride state.
	WithRideLock(ctx context.Context, rideID uuid.UUID, fn RideMutator) (*models.Ride, error)

	// ActiveRideByPassenger returns the passenger's waiting/accepted/
	// in_progress ride, or nil when there is none.
	ActiveRideByPassenger(ctx context.Context, passengerID uuid.UUID) (*models.Ride, error)

	// ActiveRideByDriver returns the driver's active ride, or nil.
	ActiveRideByDriver(ctx context.Context, driverID uuid.UUID) (*models.Ride, error)

	ListRidesByProfile(ctx context.Context, profileID uuid.UUID, limit int) ([]*models.Ride, error)

	// WaitingUnassigned returns the newest waiting rides with no driver set,
	// the candidate window for the ping-triggered opportunistic match.
	WaitingUnassigned(ctx context.Context, limit int) ([]*models.Ride, error)
}

// PingRepo is the read-only view of the ping store used by dispatch.
type PingRepo interface {
	// FreshDriverPings returns the latest ping per driver among pings newer
	// than since, most recent first.
	FreshDriverPings(ctx context.Context, since time.Time) ([]models.DriverPing, error)

	// LastDriverPing returns the driver's most recent ping, or nil.
	LastDriverPing(ctx context.Context, driverID uuid.UUID) (*models.DriverPing, error)
}

// ProfileRepo reads profiles owned by the account system.
type ProfileRepo interface {
	GetProfile(ctx context.Context, profileID uuid.UUID) (*models.Profile, error)
}
