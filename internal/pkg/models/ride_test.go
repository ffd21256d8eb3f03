package models

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTriedDrivers_AddDeduplicates(t *testing.T) {
	id := uuid.New()
	var tried TriedDrivers

	tried.Add(id)
	tried.Add(id)

	assert.Len(t, tried, 1)
	assert.True(t, tried.Contains(id))
}

func TestTriedDrivers_EvictsOldestBeyondCap(t *testing.T) {
	var tried TriedDrivers
	first := uuid.New()
	tried.Add(first)

	for i := 0; i < MaxTriedDrivers; i++ {
		tried.Add(uuid.New())
	}

	assert.Len(t, tried, MaxTriedDrivers)
	assert.False(t, tried.Contains(first), "oldest entry should be evicted first")
}

func TestTriedDrivers_ValueScanRoundTrip(t *testing.T) {
	var tried TriedDrivers
	a, b := uuid.New(), uuid.New()
	tried.Add(a)
	tried.Add(b)

	raw, err := tried.Value()
	require.NoError(t, err)

	var scanned TriedDrivers
	require.NoError(t, scanned.Scan(raw))

	assert.Equal(t, tried, scanned)
}

func TestTriedDrivers_ScanNil(t *testing.T) {
	scanned := TriedDrivers{uuid.New()}
	require.NoError(t, scanned.Scan(nil))
	assert.Nil(t, scanned)
}

func TestRideStatus_ActiveAndTerminal(t *testing.T) {
	for _, s := range ActiveRideStatuses {
		assert.True(t, s.IsActive(), string(s))
		assert.False(t, s.IsTerminal(), string(s))
	}
	assert.True(t, RideStatusCompleted.IsTerminal())
	assert.True(t, RideStatusCancelled.IsTerminal())
	assert.False(t, RideStatusRejected.IsActive())
	assert.False(t, RideStatusRejected.IsTerminal())
}

func TestRide_AssignedTo(t *testing.T) {
	driverID := uuid.New()
	ride := &Ride{}
	assert.False(t, ride.AssignedTo(driverID))

	ride.DriverID = &driverID
	assert.True(t, ride.AssignedTo(driverID))
	assert.False(t, ride.AssignedTo(uuid.New()))

	ride.ClearDriver()
	assert.Nil(t, ride.DriverID)
}
