package usecase

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/vaipaqueta/dispatch/internal/pkg/logger"
	"github.com/vaipaqueta/dispatch/internal/pkg/models"
	"github.com/vaipaqueta/dispatch/internal/pkg/observability"
	"github.com/vaipaqueta/dispatch/internal/utils"
)

// assignNearestDriver picks the closest fresh-pinged driver not yet tried for
// the ride and tentatively assigns them, keeping the ride in waiting until the
// driver accepts. Must be called with the ride row locked.
//
// When every online driver has already been tried and allowReset is set, the
// exclusion set is cleared once and the scan retried, so a ride cannot
// deadlock against a small driver pool. The retry happens at most once per
// call.
func (uc *rideUC) assignNearestDriver(ctx context.Context, ride *models.Ride, excludeDriverID *uuid.UUID, allowReset bool) (*uuid.UUID, error) {
	observability.DispatchAttemptsTotal.Inc()

	since := time.Now().UTC().Add(-uc.cfg.Dispatch.PingMaxAge)
	pings, err := uc.pings.FreshDriverPings(ctx, since)
	if err != nil {
		return nil, fmt.Errorf("failed to load fresh driver pings: %w", err)
	}

	for attempt := 0; attempt < 2; attempt++ {
		var best *models.DriverPing
		bestKm := math.MaxFloat64
		fresh := 0

		for i := range pings {
			ping := &pings[i]
			if excludeDriverID != nil && ping.DriverID == *excludeDriverID {
				continue
			}
			fresh++
			if ride.TriedDrivers.Contains(ping.DriverID) {
				continue
			}
			km := utils.DistanceKm(ping.Latitude, ping.Longitude, ride.OriginLat, ride.OriginLng)
			if km < bestKm {
				bestKm = km
				best = ping
			}
		}

		if best != nil {
			driverID := best.DriverID
			ride.DriverID = &driverID
			ride.Status = models.RideStatusWaiting
			ride.TriedDrivers.Add(driverID)

			observability.DispatchAssignedTotal.Inc()
			uc.logger.Info("Assigned nearest driver",
				logger.String("ride_id", ride.ID.String()),
				logger.String("driver_id", driverID.String()),
				logger.Float64("distance_km", bestKm))
			return &driverID, nil
		}

		if !allowReset || fresh == 0 || len(ride.TriedDrivers) == 0 {
			break
		}
		// Every online driver has been tried; clear the exclusion set and
		// rescan once.
		ride.TriedDrivers = nil
		allowReset = false
	}

	observability.DispatchUnmatchedTotal.Inc()
	return nil, nil
}

// HandlePingEvent runs the opportunistic match for a freshly recorded ping:
// an idle driver is offered the nearest unassigned waiting ride within the
// match radius, scanning a bounded window of the newest candidates. The
// candidate scan is optimistic; the chosen ride is revalidated under its row
// lock before assignment.
func (uc *rideUC) HandlePingEvent(ctx context.Context, event *models.PingEvent) error {
	active, err := uc.repo.ActiveRideByDriver(ctx, event.DriverID)
	if err != nil {
		return err
	}
	if active != nil {
		return nil
	}

	candidates, err := uc.repo.WaitingUnassigned(ctx, uc.cfg.Dispatch.MatchCandidateLimit)
	if err != nil {
		return err
	}

	var best *models.Ride
	bestKm := math.MaxFloat64
	for _, candidate := range candidates {
		if candidate.TriedDrivers.Contains(event.DriverID) {
			continue
		}
		km := utils.DistanceKm(event.Latitude, event.Longitude, candidate.OriginLat, candidate.OriginLng)
		if km > uc.cfg.Dispatch.MatchRadiusKm {
			continue
		}
		if km < bestKm {
			bestKm = km
			best = candidate
		}
	}
	if best == nil {
		return nil
	}

	assigned := false
	locked, err := uc.repo.WithRideLock(ctx, best.ID, func(ctx context.Context, ride *models.Ride) (bool, error) {
		// The scan above ran outside the lock; recheck before assigning.
		if ride.Status != models.RideStatusWaiting || ride.DriverID != nil {
			return false, nil
		}
		if ride.TriedDrivers.Contains(event.DriverID) {
			return false, nil
		}

		driverID := event.DriverID
		ride.DriverID = &driverID
		ride.TriedDrivers.Add(driverID)
		assigned = true
		return true, nil
	})
	if err != nil {
		return err
	}
	if !assigned {
		return nil
	}

	observability.DispatchAssignedTotal.Inc()
	uc.logger.Info("Opportunistic match assigned ride",
		logger.String("ride_id", locked.ID.String()),
		logger.String("driver_id", event.DriverID.String()),
		logger.Float64("distance_km", bestKm))
	uc.publishEvent(ctx, models.RideEventAssigned, locked)
	return nil
}
