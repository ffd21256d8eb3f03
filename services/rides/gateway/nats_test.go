package gateway

import (
	"context"
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vaipaqueta/dispatch/internal/pkg/constants"
	"github.com/vaipaqueta/dispatch/internal/pkg/models"

	natsserver "github.com/nats-io/nats-server/v2/test"
	natspkg "github.com/vaipaqueta/dispatch/internal/pkg/nats"
)

var testNatsURL = "nats://127.0.0.1:8371"

func TestMain(m *testing.M) {
	opts := natsserver.DefaultTestOptions
	opts.Port = 8371
	testNatsServer := natsserver.RunServer(&opts)
	code := m.Run()
	testNatsServer.Shutdown()
	os.Exit(code)
}

func TestPublishRideEvent_Requested(t *testing.T) {
	nc, err := natspkg.NewClient(testNatsURL)
	require.NoError(t, err, "Failed to connect to NATS server")
	defer nc.Close()

	driverID := uuid.New()
	ride := &models.Ride{
		ID:          uuid.New(),
		PassengerID: uuid.New(),
		DriverID:    &driverID,
		Status:      models.RideStatusWaiting,
		Seats:       1,
	}

	msgCh := make(chan *nats.Msg, 1)
	sub, err := nc.QueueSubscribe(constants.SubjectRideRequested, t.Name(), func(msg *nats.Msg) {
		msgCh <- msg
	})
	require.NoError(t, err)
	defer sub.Unsubscribe()

	rideGW := NewRideGW(nc)
	err = rideGW.PublishRideEvent(context.Background(), models.RideEventRequested, ride)
	require.NoError(t, err)

	select {
	case msg := <-msgCh:
		var event models.RideEvent
		err = json.Unmarshal(msg.Data, &event)
		require.NoError(t, err)

		assert.Equal(t, models.RideEventRequested, event.Kind)
		require.NotNil(t, event.Ride)
		assert.Equal(t, ride.ID, event.Ride.ID)
		assert.Equal(t, ride.PassengerID, event.Ride.PassengerID)
		assert.Equal(t, driverID, *event.Ride.DriverID)
		assert.False(t, event.Timestamp.IsZero())
	case <-time.After(2 * time.Second):
		t.Fatal("Did not receive published message")
	}
}

func TestPublishRideEvent_TransitionsUseUpdateSubject(t *testing.T) {
	nc, err := natspkg.NewClient(testNatsURL)
	require.NoError(t, err, "Failed to connect to NATS server")
	defer nc.Close()

	ride := &models.Ride{
		ID:          uuid.New(),
		PassengerID: uuid.New(),
		Status:      models.RideStatusAccepted,
	}

	msgCh := make(chan *nats.Msg, 2)
	sub, err := nc.QueueSubscribe(constants.SubjectRideUpdated, t.Name(), func(msg *nats.Msg) {
		msgCh <- msg
	})
	require.NoError(t, err)
	defer sub.Unsubscribe()

	rideGW := NewRideGW(nc)
	for _, kind := range []models.RideEventKind{models.RideEventAccepted, models.RideEventExpired} {
		require.NoError(t, rideGW.PublishRideEvent(context.Background(), kind, ride))
	}

	kinds := []models.RideEventKind{}
	for i := 0; i < 2; i++ {
		select {
		case msg := <-msgCh:
			var event models.RideEvent
			require.NoError(t, json.Unmarshal(msg.Data, &event))
			kinds = append(kinds, event.Kind)
		case <-time.After(2 * time.Second):
			t.Fatal("Did not receive published message")
		}
	}
	assert.ElementsMatch(t, []models.RideEventKind{models.RideEventAccepted, models.RideEventExpired}, kinds)
}
