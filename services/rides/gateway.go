package rides

import (
	"context"

	"github.com/vaipaqueta/dispatch/internal/pkg/models"
)

// RideGW defines the interface for publishing ride lifecycle events.
// Delivery is fire-and-forget: a failed publish is logged by the caller and
// never rolls back a transition.
//
//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/vaipaqueta/dispatch/services/rides RideGW
type RideGW interface {
	PublishRideEvent(ctx context.Context, kind models.RideEventKind, ride *models.Ride) error
}
