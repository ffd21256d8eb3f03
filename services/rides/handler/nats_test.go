package handler

import (
	"context"
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/vaipaqueta/dispatch/internal/pkg/constants"
	"github.com/vaipaqueta/dispatch/internal/pkg/logger"
	"github.com/vaipaqueta/dispatch/internal/pkg/models"
	"github.com/vaipaqueta/dispatch/services/rides/mocks"

	natsserver "github.com/nats-io/nats-server/v2/test"
	natspkg "github.com/vaipaqueta/dispatch/internal/pkg/nats"
)

var testNatsURL = "nats://127.0.0.1:8372"

func TestMain(m *testing.M) {
	opts := natsserver.DefaultTestOptions
	opts.Port = 8372
	testNatsServer := natsserver.RunServer(&opts)
	code := m.Run()
	testNatsServer.Shutdown()
	os.Exit(code)
}

func setupPingConsumer(t *testing.T) (*PingConsumer, *mocks.MockRideUC, *natspkg.Client) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	nc, err := natspkg.NewClient(testNatsURL)
	require.NoError(t, err, "Failed to connect to NATS server")
	t.Cleanup(nc.Close)

	zapLogger, err := logger.NewZapLogger(models.LoggerConfig{Level: "error"})
	require.NoError(t, err)

	rideUC := mocks.NewMockRideUC(ctrl)
	consumer := NewPingConsumer(rideUC, nc, zapLogger)
	return consumer, rideUC, nc
}

func TestPingConsumer_DeliversEventToMatch(t *testing.T) {
	consumer, mockUC, nc := setupPingConsumer(t)
	require.NoError(t, consumer.Start())

	event := models.PingEvent{
		DriverID:  uuid.New(),
		Latitude:  -22.75,
		Longitude: -43.10,
		PingedAt:  time.Now().UTC(),
	}

	handled := make(chan models.PingEvent, 1)
	mockUC.EXPECT().
		HandlePingEvent(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, got *models.PingEvent) error {
			handled <- *got
			return nil
		})

	data, err := json.Marshal(event)
	require.NoError(t, err)
	require.NoError(t, nc.Publish(constants.SubjectLocationPing, data))

	select {
	case got := <-handled:
		require.Equal(t, event.DriverID, got.DriverID)
		require.Equal(t, event.Latitude, got.Latitude)
	case <-time.After(2 * time.Second):
		t.Fatal("Ping event was not consumed")
	}
}

func TestPingConsumer_MalformedEventIsDropped(t *testing.T) {
	consumer, mockUC, nc := setupPingConsumer(t)
	require.NoError(t, consumer.Start())

	// No usecase call may happen for garbage payloads.
	mockUC.EXPECT().HandlePingEvent(gomock.Any(), gomock.Any()).Times(0)

	require.NoError(t, nc.Publish(constants.SubjectLocationPing, []byte("not json")))
	time.Sleep(200 * time.Millisecond)
}
