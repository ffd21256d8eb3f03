package location

import (
	"context"

	"github.com/vaipaqueta/dispatch/internal/pkg/models"
)

// LocationGW defines the interface for publishing location events.
//
//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/vaipaqueta/dispatch/services/location LocationGW
type LocationGW interface {
	// PublishPingEvent emits the internal event that feeds the
	// opportunistic match.
	PublishPingEvent(ctx context.Context, event *models.PingEvent) error

	// PublishDriverLocation mirrors a ping to ride subscribers; only called
	// for drivers on an active ride.
	PublishDriverLocation(ctx context.Context, event *models.DriverLocationEvent) error
}
