package gateway

import (
	"context"
	"time"

	"github.com/vaipaqueta/dispatch/internal/pkg/constants"
	"github.com/vaipaqueta/dispatch/internal/pkg/models"
	"github.com/vaipaqueta/dispatch/internal/pkg/nats"
)

// RideGW publishes ride lifecycle events to NATS subjects consumed by the
// notification layer.
type RideGW struct {
	producer *nats.Producer
}

// NewRideGW creates a new ride event gateway
func NewRideGW(client *nats.Client) *RideGW {
	return &RideGW{producer: nats.NewProducer(client)}
}

// PublishRideEvent publishes a lifecycle event for the ride. Requested rides
// go to their own subject; every later transition shares the update subject.
func (g *RideGW) PublishRideEvent(_ context.Context, kind models.RideEventKind, ride *models.Ride) error {
	subject := constants.SubjectRideUpdated
	if kind == models.RideEventRequested {
		subject = constants.SubjectRideRequested
	}

	return g.producer.Publish(subject, models.RideEvent{
		Kind:      kind,
		Ride:      ride,
		Timestamp: time.Now().UTC(),
	})
}
