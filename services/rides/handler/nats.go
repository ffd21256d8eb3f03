package handler

import (
	"context"
	"encoding/json"

	natsio "github.com/nats-io/nats.go"
	"github.com/vaipaqueta/dispatch/internal/pkg/constants"
	"github.com/vaipaqueta/dispatch/internal/pkg/logger"
	"github.com/vaipaqueta/dispatch/internal/pkg/models"
	"github.com/vaipaqueta/dispatch/internal/pkg/nats"
	"github.com/vaipaqueta/dispatch/services/rides"
)

// PingConsumer feeds recorded location pings into the opportunistic match.
// The queue group spreads events across instances so one ping triggers at
// most one match attempt.
type PingConsumer struct {
	rideUC rides.RideUC
	client *nats.Client
	logger *logger.ZapLogger
}

// NewPingConsumer creates a new ping event consumer
func NewPingConsumer(rideUC rides.RideUC, client *nats.Client, zapLogger *logger.ZapLogger) *PingConsumer {
	return &PingConsumer{
		rideUC: rideUC,
		client: client,
		logger: zapLogger,
	}
}

// Start subscribes to the internal ping subject.
func (pc *PingConsumer) Start() error {
	_, err := pc.client.QueueSubscribe(constants.SubjectLocationPing, constants.QueueDispatch, pc.handlePing)
	return err
}

// handlePing runs the opportunistic match for one ping. Failures are logged
// and dropped: a failed match attempt must never affect ping ingestion.
func (pc *PingConsumer) handlePing(msg *natsio.Msg) {
	var event models.PingEvent
	if err := json.Unmarshal(msg.Data, &event); err != nil {
		pc.logger.Error("Failed to unmarshal ping event", logger.Err(err))
		return
	}

	if err := pc.rideUC.HandlePingEvent(context.Background(), &event); err != nil {
		pc.logger.Error("Opportunistic match failed",
			logger.String("driver_id", event.DriverID.String()),
			logger.Err(err))
	}
}
