package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistanceMeters_ZeroForSamePoint(t *testing.T) {
	assert.Equal(t, 0.0, DistanceMeters(-22.75, -43.10, -22.75, -43.10))
}

func TestDistanceMeters_KnownDistances(t *testing.T) {
	tests := []struct {
		name                   string
		lat1, lng1, lat2, lng2 float64
		wantMeters             float64
		tolerance              float64
	}{
		{
			// One degree of latitude along a meridian
			name: "one degree latitude",
			lat1: 0, lng1: 0, lat2: 1, lng2: 0,
			wantMeters: 111195,
			tolerance:  100,
		},
		{
			// Paquetá island to downtown Rio
			name: "paqueta to rio center",
			lat1: -22.7626, lng1: -43.1075, lat2: -22.9068, lng2: -43.1729,
			wantMeters: 17400,
			tolerance:  500,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DistanceMeters(tt.lat1, tt.lng1, tt.lat2, tt.lng2)
			assert.InDelta(t, tt.wantMeters, got, tt.tolerance)
		})
	}
}

func TestDistanceKm_MatchesMeters(t *testing.T) {
	meters := DistanceMeters(-22.75, -43.10, -22.76, -43.11)
	km := DistanceKm(-22.75, -43.10, -22.76, -43.11)
	assert.InDelta(t, meters/1000.0, km, 1e-9)
}

func TestGeohashRoundTrip(t *testing.T) {
	hash := EncodeLocation(-22.7626, -43.1075, 7)
	lat, lng := DecodeGeohash(hash)
	assert.InDelta(t, -22.7626, lat, 0.01)
	assert.InDelta(t, -43.1075, lng, 0.01)

	neighbors := GeohashNeighbors(hash)
	assert.Len(t, neighbors, 8)
}
