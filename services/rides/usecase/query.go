package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/vaipaqueta/dispatch/internal/pkg/apperrors"
	"github.com/vaipaqueta/dispatch/internal/pkg/logger"
	"github.com/vaipaqueta/dispatch/internal/pkg/models"
	"github.com/vaipaqueta/dispatch/internal/utils"
)

const (
	defaultListLimit = 20
	maxListLimit     = 100
)

// GetRide retrieves a ride for one of its parties or an admin.
func (uc *rideUC) GetRide(ctx context.Context, actor models.Actor, rideID uuid.UUID) (*models.Ride, error) {
	ride, err := uc.repo.GetRide(ctx, rideID)
	if err != nil {
		return nil, err
	}
	if !actor.Admin && ride.PassengerID != actor.ProfileID && !ride.AssignedTo(actor.ProfileID) {
		return nil, apperrors.Forbidden("actor is not a party to this ride")
	}
	return ride, nil
}

// ListRides retrieves the newest rides where the profile is a party.
func (uc *rideUC) ListRides(ctx context.Context, actor models.Actor, profileID uuid.UUID, limit int) ([]*models.Ride, error) {
	if err := ensureActingAs(actor, profileID); err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}
	return uc.repo.ListRidesByProfile(ctx, profileID, limit)
}

// ActiveRideForPassenger returns the passenger's current ride, refreshing a
// stale assignment first so polling clients never see an abandoned driver. An
// unassigned waiting ride gets a best-effort dispatch attempt on every poll.
// This is the one read path allowed to reset the exclusion set.
func (uc *rideUC) ActiveRideForPassenger(ctx context.Context, actor models.Actor, passengerID uuid.UUID) (*models.Ride, error) {
	if err := ensureActingAs(actor, passengerID); err != nil {
		return nil, err
	}
	ride, err := uc.repo.ActiveRideByPassenger(ctx, passengerID)
	if err != nil || ride == nil {
		return ride, err
	}
	if ride.Status == models.RideStatusWaiting && ride.DriverID == nil {
		return uc.redispatchUnassigned(ctx, ride)
	}
	return uc.refreshExpiry(ctx, ride, true)
}

// redispatchUnassigned retries the dispatch scan for a waiting unassigned ride
// surfaced by a passenger poll. Failures never fail the read.
func (uc *rideUC) redispatchUnassigned(ctx context.Context, ride *models.Ride) (*models.Ride, error) {
	assigned := false
	locked, err := uc.repo.WithRideLock(ctx, ride.ID, func(ctx context.Context, locked *models.Ride) (bool, error) {
		if locked.Status != models.RideStatusWaiting || locked.DriverID != nil {
			return false, nil
		}
		driverID, dispatchErr := uc.assignNearestDriver(ctx, locked, nil, true)
		if dispatchErr != nil {
			return false, dispatchErr
		}
		assigned = driverID != nil
		return assigned, nil
	})
	if err != nil {
		uc.logger.Error("Re-dispatch on passenger poll failed",
			logger.String("ride_id", ride.ID.String()),
			logger.Err(err))
		return ride, nil
	}
	if assigned {
		uc.publishEvent(ctx, models.RideEventAssigned, locked)
	}
	return locked, nil
}

// ActiveRideForDriver returns the ride currently assigned to the driver, or
// nil once an expired assignment has been released.
func (uc *rideUC) ActiveRideForDriver(ctx context.Context, actor models.Actor, driverID uuid.UUID) (*models.Ride, error) {
	if err := ensureActingAs(actor, driverID); err != nil {
		return nil, err
	}
	ride, err := uc.repo.ActiveRideByDriver(ctx, driverID)
	if err != nil || ride == nil {
		return ride, err
	}

	refreshed, err := uc.refreshExpiry(ctx, ride, false)
	if err != nil {
		return nil, err
	}
	if !refreshed.AssignedTo(driverID) {
		return nil, nil
	}
	return refreshed, nil
}

// refreshExpiry re-runs the expiry check under the row lock when the surfaced
// ride looks stale. Rides that are not stale are returned unchanged without
// taking the lock.
func (uc *rideUC) refreshExpiry(ctx context.Context, ride *models.Ride, allowReset bool) (*models.Ride, error) {
	if ride.Status != models.RideStatusWaiting || ride.DriverID == nil ||
		time.Since(ride.UpdatedAt) <= uc.cfg.Dispatch.AssignmentExpiry {
		return ride, nil
	}

	expired := false
	locked, err := uc.repo.WithRideLock(ctx, ride.ID, func(ctx context.Context, locked *models.Ride) (bool, error) {
		expired = uc.expireAssignmentIfStale(ctx, locked, allowReset)
		return expired, nil
	})
	if err != nil {
		return nil, err
	}
	uc.publishExpiryOutcome(ctx, expired, locked)
	return locked, nil
}

// AssignedDriverPosition returns the last known position of the driver
// assigned to an active ride, with its distance to the pickup point.
func (uc *rideUC) AssignedDriverPosition(ctx context.Context, actor models.Actor, rideID uuid.UUID) (*models.NearbyDriver, error) {
	ride, err := uc.GetRide(ctx, actor, rideID)
	if err != nil {
		return nil, err
	}
	if ride.DriverID == nil || !ride.Status.IsActive() {
		return nil, apperrors.NotFound("ride %s has no assigned driver", rideID)
	}

	ping, err := uc.pings.LastDriverPing(ctx, *ride.DriverID)
	if err != nil {
		return nil, err
	}
	if ping == nil {
		return nil, apperrors.NotFound("driver %s has no recorded position", *ride.DriverID)
	}

	return &models.NearbyDriver{
		DriverID:   ping.DriverID,
		Latitude:   ping.Latitude,
		Longitude:  ping.Longitude,
		AccuracyM:  ping.AccuracyM,
		DistanceKm: utils.DistanceKm(ping.Latitude, ping.Longitude, ride.OriginLat, ride.OriginLng),
		PingedAt:   ping.PingedAt,
	}, nil
}
