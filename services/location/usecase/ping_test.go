package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vaipaqueta/dispatch/internal/pkg/apperrors"
	"github.com/vaipaqueta/dispatch/internal/pkg/logger"
	"github.com/vaipaqueta/dispatch/internal/pkg/models"
	"github.com/vaipaqueta/dispatch/services/location"
	"github.com/vaipaqueta/dispatch/services/location/mocks"
)

type ucMocks struct {
	repo     *mocks.MockLocationRepo
	rides    *mocks.MockRideReader
	profiles *mocks.MockProfileReader
	gw       *mocks.MockLocationGW
}

func testConfig() *models.Config {
	return &models.Config{
		Dispatch: models.DispatchConfig{
			PingMaxAge:          5 * time.Minute,
			MatchRadiusKm:       3.0,
			MatchCandidateLimit: 50,
		},
	}
}

func newTestUC(t *testing.T) (location.LocationUC, ucMocks) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	m := ucMocks{
		repo:     mocks.NewMockLocationRepo(ctrl),
		rides:    mocks.NewMockRideReader(ctrl),
		profiles: mocks.NewMockProfileReader(ctrl),
		gw:       mocks.NewMockLocationGW(ctrl),
	}

	zapLogger, err := logger.NewZapLogger(models.LoggerConfig{Level: "error"})
	require.NoError(t, err)

	uc := NewLocationUC(testConfig(), m.repo, m.rides, m.profiles, m.gw, zapLogger)
	return uc, m
}

func driverProfile(id uuid.UUID) *models.Profile {
	return &models.Profile{ID: id, Kind: models.ProfileKindDriver, Name: "driver"}
}

func TestSubmitPing_RecordsAndPublishes(t *testing.T) {
	uc, m := newTestUC(t)

	driverID := uuid.New()
	m.profiles.EXPECT().GetProfile(gomock.Any(), driverID).Return(driverProfile(driverID), nil)

	var recorded *models.LocationPing
	m.repo.EXPECT().
		RecordPing(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, ping *models.LocationPing) error {
			recorded = ping
			return nil
		})
	m.gw.EXPECT().
		PublishPingEvent(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, event *models.PingEvent) error {
			assert.Equal(t, driverID, event.DriverID)
			assert.Equal(t, -22.75, event.Latitude)
			return nil
		})
	m.rides.EXPECT().ActiveRideByDriver(gomock.Any(), driverID).Return(nil, nil)

	ping, err := uc.SubmitPing(context.Background(), models.Actor{ProfileID: driverID}, &location.PingSubmission{
		Latitude:  -22.75,
		Longitude: -43.10,
	})

	require.NoError(t, err)
	assert.Equal(t, recorded, ping)
	assert.Equal(t, driverID, ping.DriverID)
	assert.False(t, ping.CreatedAt.IsZero())
}

func TestSubmitPing_MirrorsPositionToActiveRide(t *testing.T) {
	uc, m := newTestUC(t)

	driverID := uuid.New()
	rideID := uuid.New()
	m.profiles.EXPECT().GetProfile(gomock.Any(), driverID).Return(driverProfile(driverID), nil)
	m.repo.EXPECT().RecordPing(gomock.Any(), gomock.Any()).Return(nil)
	m.gw.EXPECT().PublishPingEvent(gomock.Any(), gomock.Any()).Return(nil)
	m.rides.EXPECT().ActiveRideByDriver(gomock.Any(), driverID).Return(&models.Ride{
		ID:       rideID,
		DriverID: &driverID,
		Status:   models.RideStatusInProgress,
	}, nil)
	m.gw.EXPECT().
		PublishDriverLocation(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, event *models.DriverLocationEvent) error {
			assert.Equal(t, rideID, event.RideID)
			assert.Equal(t, driverID, event.DriverID)
			return nil
		})

	_, err := uc.SubmitPing(context.Background(), models.Actor{ProfileID: driverID}, &location.PingSubmission{
		Latitude:  -22.75,
		Longitude: -43.10,
	})

	require.NoError(t, err)
}

func TestSubmitPing_PublishFailureStillSucceeds(t *testing.T) {
	uc, m := newTestUC(t)

	driverID := uuid.New()
	m.profiles.EXPECT().GetProfile(gomock.Any(), driverID).Return(driverProfile(driverID), nil)
	m.repo.EXPECT().RecordPing(gomock.Any(), gomock.Any()).Return(nil)
	m.gw.EXPECT().PublishPingEvent(gomock.Any(), gomock.Any()).Return(errors.New("nats down"))
	m.rides.EXPECT().ActiveRideByDriver(gomock.Any(), driverID).Return(nil, nil)

	ping, err := uc.SubmitPing(context.Background(), models.Actor{ProfileID: driverID}, &location.PingSubmission{
		Latitude:  -22.75,
		Longitude: -43.10,
	})

	require.NoError(t, err)
	assert.NotNil(t, ping)
}

func TestSubmitPing_RecordFailureFailsTheCall(t *testing.T) {
	uc, m := newTestUC(t)

	driverID := uuid.New()
	m.profiles.EXPECT().GetProfile(gomock.Any(), driverID).Return(driverProfile(driverID), nil)
	m.repo.EXPECT().RecordPing(gomock.Any(), gomock.Any()).Return(errors.New("insert failed"))

	_, err := uc.SubmitPing(context.Background(), models.Actor{ProfileID: driverID}, &location.PingSubmission{
		Latitude:  -22.75,
		Longitude: -43.10,
	})

	assert.Error(t, err)
}

func TestSubmitPing_NonDriverForbidden(t *testing.T) {
	uc, m := newTestUC(t)

	profileID := uuid.New()
	m.profiles.EXPECT().GetProfile(gomock.Any(), profileID).Return(&models.Profile{
		ID:   profileID,
		Kind: models.ProfileKindPassenger,
	}, nil)

	_, err := uc.SubmitPing(context.Background(), models.Actor{ProfileID: profileID}, &location.PingSubmission{
		Latitude:  -22.75,
		Longitude: -43.10,
	})

	assert.True(t, apperrors.Is(err, apperrors.KindForbidden))
}

func TestSubmitPing_ForAnotherDriverForbidden(t *testing.T) {
	uc, _ := newTestUC(t)

	other := uuid.New()
	_, err := uc.SubmitPing(context.Background(), models.Actor{ProfileID: uuid.New()}, &location.PingSubmission{
		DriverID:  &other,
		Latitude:  -22.75,
		Longitude: -43.10,
	})

	assert.True(t, apperrors.Is(err, apperrors.KindForbidden))
}

func TestSubmitPing_AdminMaySubmitForAnyDriver(t *testing.T) {
	uc, m := newTestUC(t)

	driverID := uuid.New()
	m.profiles.EXPECT().GetProfile(gomock.Any(), driverID).Return(driverProfile(driverID), nil)
	m.repo.EXPECT().RecordPing(gomock.Any(), gomock.Any()).Return(nil)
	m.gw.EXPECT().PublishPingEvent(gomock.Any(), gomock.Any()).Return(nil)
	m.rides.EXPECT().ActiveRideByDriver(gomock.Any(), driverID).Return(nil, nil)

	admin := models.Actor{ProfileID: uuid.New(), Admin: true}
	ping, err := uc.SubmitPing(context.Background(), admin, &location.PingSubmission{
		DriverID:  &driverID,
		Latitude:  -22.75,
		Longitude: -43.10,
	})

	require.NoError(t, err)
	assert.Equal(t, driverID, ping.DriverID)
}

func TestSubmitPing_InvalidCoordinates(t *testing.T) {
	uc, m := newTestUC(t)

	driverID := uuid.New()
	m.profiles.EXPECT().GetProfile(gomock.Any(), driverID).Return(driverProfile(driverID), nil)

	_, err := uc.SubmitPing(context.Background(), models.Actor{ProfileID: driverID}, &location.PingSubmission{
		Latitude:  -22.75,
		Longitude: 181,
	})

	assert.True(t, apperrors.Is(err, apperrors.KindInvalidInput))
}

func TestNearbyDrivers_DefaultsApplied(t *testing.T) {
	uc, m := newTestUC(t)

	want := []models.NearbyDriver{{DriverID: uuid.New(), DistanceKm: 0.4}}
	m.repo.EXPECT().NearbyDrivers(gomock.Any(), -22.75, -43.10, 3.0, 50).Return(want, nil)

	got, err := uc.NearbyDrivers(context.Background(), -22.75, -43.10, 0, 0)

	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestNearbyDrivers_InvalidCoordinates(t *testing.T) {
	uc, _ := newTestUC(t)

	_, err := uc.NearbyDrivers(context.Background(), -91, -43.10, 3.0, 10)

	assert.True(t, apperrors.Is(err, apperrors.KindInvalidInput))
}
