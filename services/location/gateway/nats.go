package gateway

import (
	"context"

	"github.com/vaipaqueta/dispatch/internal/pkg/constants"
	"github.com/vaipaqueta/dispatch/internal/pkg/models"
	"github.com/vaipaqueta/dispatch/internal/pkg/nats"
)

// LocationGW publishes location events to NATS.
type LocationGW struct {
	producer *nats.Producer
}

// NewLocationGW creates a new location event gateway
func NewLocationGW(client *nats.Client) *LocationGW {
	return &LocationGW{producer: nats.NewProducer(client)}
}

// PublishPingEvent emits the internal ping event consumed by dispatch.
func (g *LocationGW) PublishPingEvent(_ context.Context, event *models.PingEvent) error {
	return g.producer.Publish(constants.SubjectLocationPing, event)
}

// PublishDriverLocation mirrors a ping to ride subscribers.
func (g *LocationGW) PublishDriverLocation(_ context.Context, event *models.DriverLocationEvent) error {
	return g.producer.Publish(constants.SubjectDriverMoved, event)
}
