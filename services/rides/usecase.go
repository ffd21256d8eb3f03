package rides

import (
	"context"

	"github.com/google/uuid"
	"github.com/vaipaqueta/dispatch/internal/pkg/models"
)

// RideUC defines the interface for ride lifecycle and dispatch business logic
//
//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/vaipaqueta/dispatch/services/rides RideUC
type RideUC interface {
	// Lifecycle transitions
	RequestRide(ctx context.Context, actor models.Actor, req *models.RideRequest) (*models.Ride, error)
	AcceptRide(ctx context.Context, actor models.Actor, rideID, driverID uuid.UUID) (*models.Ride, error)
	StartRide(ctx context.Context, actor models.Actor, rideID, driverID uuid.UUID) (*models.Ride, error)
	FinishRide(ctx context.Context, actor models.Actor, rideID, profileID uuid.UUID) (*models.Ride, error)
	RejectRide(ctx context.Context, actor models.Actor, rideID, driverID uuid.UUID) (*models.Ride, error)
	CancelRide(ctx context.Context, actor models.Actor, rideID, passengerID uuid.UUID) (*models.Ride, error)
	ReassignRide(ctx context.Context, actor models.Actor, rideID uuid.UUID, excludeDriverID *uuid.UUID) (*models.Ride, error)

	// Read paths
	GetRide(ctx context.Context, actor models.Actor, rideID uuid.UUID) (*models.Ride, error)
	ListRides(ctx context.Context, actor models.Actor, profileID uuid.UUID, limit int) ([]*models.Ride, error)
	ActiveRideForPassenger(ctx context.Context, actor models.Actor, passengerID uuid.UUID) (*models.Ride, error)
	ActiveRideForDriver(ctx context.Context, actor models.Actor, driverID uuid.UUID) (*models.Ride, error)
	AssignedDriverPosition(ctx context.Context, actor models.Actor, rideID uuid.UUID) (*models.NearbyDriver, error)

	// HandlePingEvent runs the opportunistic match for a freshly recorded ping
	HandlePingEvent(ctx context.Context, event *models.PingEvent) error
}
