package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vaipaqueta/dispatch/internal/pkg/apperrors"
	"github.com/vaipaqueta/dispatch/internal/pkg/models"
)

func TestGetRide_PartyAccess(t *testing.T) {
	uc, m := newTestUC(t)

	passengerID := uuid.New()
	ride := waitingRide(passengerID)

	m.repo.EXPECT().GetRide(gomock.Any(), ride.ID).Return(ride, nil).Times(3)

	got, err := uc.GetRide(context.Background(), actorFor(passengerID), ride.ID)
	require.NoError(t, err)
	assert.Equal(t, ride, got)

	_, err = uc.GetRide(context.Background(), actorFor(uuid.New()), ride.ID)
	assert.True(t, apperrors.Is(err, apperrors.KindForbidden))

	_, err = uc.GetRide(context.Background(), models.Actor{ProfileID: uuid.New(), Admin: true}, ride.ID)
	assert.NoError(t, err)
}

func TestListRides_LimitClamped(t *testing.T) {
	uc, m := newTestUC(t)

	profileID := uuid.New()
	m.repo.EXPECT().ListRidesByProfile(gomock.Any(), profileID, 20).Return([]*models.Ride{}, nil)
	m.repo.EXPECT().ListRidesByProfile(gomock.Any(), profileID, 100).Return([]*models.Ride{}, nil)

	_, err := uc.ListRides(context.Background(), actorFor(profileID), profileID, 0)
	require.NoError(t, err)

	_, err = uc.ListRides(context.Background(), actorFor(profileID), profileID, 500)
	require.NoError(t, err)
}

func TestListRides_OtherProfileForbidden(t *testing.T) {
	uc, _ := newTestUC(t)

	_, err := uc.ListRides(context.Background(), actorFor(uuid.New()), uuid.New(), 10)
	assert.True(t, apperrors.Is(err, apperrors.KindForbidden))
}

func TestAssignedDriverPosition_Success(t *testing.T) {
	uc, m := newTestUC(t)

	passengerID := uuid.New()
	driverID := uuid.New()
	now := time.Now().UTC()
	ride := waitingRide(passengerID)
	ride.Status = models.RideStatusAccepted
	ride.DriverID = &driverID
	ride.AcceptedAt = &now

	m.repo.EXPECT().GetRide(gomock.Any(), ride.ID).Return(ride, nil)
	m.pings.EXPECT().LastDriverPing(gomock.Any(), driverID).Return(&models.DriverPing{
		DriverID:  driverID,
		Latitude:  -22.7527,
		Longitude: -43.10,
		PingedAt:  now,
	}, nil)

	pos, err := uc.AssignedDriverPosition(context.Background(), actorFor(passengerID), ride.ID)

	require.NoError(t, err)
	assert.Equal(t, driverID, pos.DriverID)
	assert.InDelta(t, 0.3, pos.DistanceKm, 0.05)
	assert.Equal(t, now, pos.PingedAt)
}

func TestAssignedDriverPosition_NoDriver(t *testing.T) {
	uc, m := newTestUC(t)

	passengerID := uuid.New()
	ride := waitingRide(passengerID)

	m.repo.EXPECT().GetRide(gomock.Any(), ride.ID).Return(ride, nil)

	_, err := uc.AssignedDriverPosition(context.Background(), actorFor(passengerID), ride.ID)

	assert.True(t, apperrors.Is(err, apperrors.KindNotFound))
}

func TestAssignedDriverPosition_NeverPinged(t *testing.T) {
	uc, m := newTestUC(t)

	passengerID := uuid.New()
	driverID := uuid.New()
	ride := waitingRide(passengerID)
	ride.DriverID = &driverID

	m.repo.EXPECT().GetRide(gomock.Any(), ride.ID).Return(ride, nil)
	m.pings.EXPECT().LastDriverPing(gomock.Any(), driverID).Return(nil, nil)

	_, err := uc.AssignedDriverPosition(context.Background(), actorFor(passengerID), ride.ID)

	assert.True(t, apperrors.Is(err, apperrors.KindNotFound))
}
