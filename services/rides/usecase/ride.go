package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/vaipaqueta/dispatch/internal/pkg/apperrors"
	"github.com/vaipaqueta/dispatch/internal/pkg/logger"
	"github.com/vaipaqueta/dispatch/internal/pkg/models"
	"github.com/vaipaqueta/dispatch/internal/pkg/observability"
	"github.com/vaipaqueta/dispatch/services/rides"
)

// maxSeats bounds the seat count of a single ride request.
const maxSeats = 2

type rideUC struct {
	cfg      *models.Config
	repo     rides.RideRepo
	pings    rides.PingRepo
	profiles rides.ProfileRepo
	gw       rides.RideGW
	logger   *logger.ZapLogger
}

// NewRideUC creates the ride lifecycle and dispatch usecase
func NewRideUC(
	cfg *models.Config,
	repo rides.RideRepo,
	pings rides.PingRepo,
	profiles rides.ProfileRepo,
	gw rides.RideGW,
	zapLogger *logger.ZapLogger,
) rides.RideUC {
	return &rideUC{
		cfg:      cfg,
		repo:     repo,
		pings:    pings,
		profiles: profiles,
		gw:       gw,
		logger:   zapLogger,
	}
}

// ensureActingAs verifies the actor may act as the given profile. Admin
// actors may act for anyone; everyone else only for themselves.
func ensureActingAs(actor models.Actor, profileID uuid.UUID) error {
	if actor.Admin || actor.ProfileID == profileID {
		return nil
	}
	return apperrors.Forbidden("actor may not act for profile %s", profileID)
}

func (uc *rideUC) requireKind(ctx context.Context, profileID uuid.UUID, kind models.ProfileKind) (*models.Profile, error) {
	profile, err := uc.profiles.GetProfile(ctx, profileID)
	if err != nil {
		return nil, err
	}
	if profile.Kind != kind {
		return nil, apperrors.Forbidden("profile %s is not a %s", profileID, kind)
	}
	return profile, nil
}

// publishEvent is fire-and-forget: a failed publish never rolls back the
// transition that produced it.
func (uc *rideUC) publishEvent(ctx context.Context, kind models.RideEventKind, ride *models.Ride) {
	if err := uc.gw.PublishRideEvent(ctx, kind, ride); err != nil {
		uc.logger.Error("Failed to publish ride event",
			logger.String("kind", string(kind)),
			logger.String("ride_id", ride.ID.String()),
			logger.Err(err))
	}
}

func validateRideRequest(req *models.RideRequest) error {
	if !validCoordinate(req.OriginLat, req.OriginLng) {
		return apperrors.InvalidInput("origin coordinates out of range")
	}
	if !validCoordinate(req.DestinationLat, req.DestinationLng) {
		return apperrors.InvalidInput("destination coordinates out of range")
	}
	// Zero means omitted; RequestRide fills in the single-seat default.
	if req.Seats < 0 || req.Seats > maxSeats {
		return apperrors.InvalidInput("seat count must be between 1 and %d", maxSeats)
	}
	return nil
}

func validCoordinate(lat, lng float64) bool {
	return lat >= -90 && lat <= 90 && lng >= -180 && lng <= 180
}

// RequestRide creates a waiting ride for the passenger and immediately
// attempts a best-effort driver assignment.
func (uc *rideUC) RequestRide(ctx context.Context, actor models.Actor, req *models.RideRequest) (*models.Ride, error) {
	passengerID := actor.ProfileID
	if req.PassengerID != nil {
		if err := ensureActingAs(actor, *req.PassengerID); err != nil {
			return nil, err
		}
		passengerID = *req.PassengerID
	}

	if _, err := uc.requireKind(ctx, passengerID, models.ProfileKindPassenger); err != nil {
		return nil, err
	}
	if err := validateRideRequest(req); err != nil {
		return nil, err
	}

	if existing, err := uc.repo.ActiveRideByPassenger(ctx, passengerID); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, apperrors.Conflict("passenger already has an active ride").WithData(existing)
	}

	seats := req.Seats
	if seats == 0 {
		seats = 1
	}

	now := time.Now().UTC()
	ride := &models.Ride{
		ID:          uuid.New(),
		PassengerID: passengerID,
		Status:      models.RideStatusWaiting,
		Seats:       seats,
		OriginLat:   req.OriginLat,
		OriginLng:   req.OriginLng,
		OriginAddr:  req.OriginAddress,
		DestLat:     req.DestinationLat,
		DestLng:     req.DestinationLng,
		DestAddr:    req.DestinationAddress,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := uc.repo.CreateRequestedRide(ctx, ride); err != nil {
		if apperrors.Is(err, apperrors.KindConflict) {
			// Lost the race against a concurrent request; surface the
			// winner's ride the same way the pre-check does.
			if existing, getErr := uc.repo.ActiveRideByPassenger(ctx, passengerID); getErr == nil && existing != nil {
				return nil, apperrors.Conflict("passenger already has an active ride").WithData(existing)
			}
		}
		return nil, err
	}

	observability.RidesRequestedTotal.Inc()
	uc.publishEvent(ctx, models.RideEventRequested, ride)

	assigned := false
	final, err := uc.repo.WithRideLock(ctx, ride.ID, func(ctx context.Context, locked *models.Ride) (bool, error) {
		driverID, dispatchErr := uc.assignNearestDriver(ctx, locked, nil, true)
		if dispatchErr != nil {
			return false, dispatchErr
		}
		assigned = driverID != nil
		return assigned, nil
	})
	if err != nil {
		// Assignment is best-effort; the ride stays waiting and the
		// opportunistic match can still pick it up.
		uc.logger.Error("Initial dispatch failed",
			logger.String("ride_id", ride.ID.String()),
			logger.Err(err))
		return ride, nil
	}

	if assigned {
		uc.publishEvent(ctx, models.RideEventAssigned, final)
	}
	return final, nil
}

// expireAssignmentIfStale releases an assignment that sat unaccepted past the
// expiry window and re-dispatches excluding the abandoning driver. Must run
// with the ride row locked. Idempotent: only the expired path has effects.
func (uc *rideUC) expireAssignmentIfStale(ctx context.Context, ride *models.Ride, allowReset bool) bool {
	if ride.Status != models.RideStatusWaiting || ride.DriverID == nil {
		return false
	}
	ref := ride.UpdatedAt
	if ref.IsZero() {
		ref = ride.CreatedAt
	}
	if time.Since(ref) <= uc.cfg.Dispatch.AssignmentExpiry {
		return false
	}

	expired := *ride.DriverID
	ride.TriedDrivers.Add(expired)
	ride.ClearDriver()
	observability.RidesExpiredTotal.Inc()
	uc.logger.Info("Released expired ride assignment",
		logger.String("ride_id", ride.ID.String()),
		logger.String("driver_id", expired.String()))

	if _, err := uc.assignNearestDriver(ctx, ride, &expired, allowReset); err != nil {
		uc.logger.Error("Re-dispatch after expiry failed",
			logger.String("ride_id", ride.ID.String()),
			logger.Err(err))
	}
	return true
}

// AcceptRide moves a waiting ride to accepted on behalf of its driver.
func (uc *rideUC) AcceptRide(ctx context.Context, actor models.Actor, rideID, driverID uuid.UUID) (*models.Ride, error) {
	if err := ensureActingAs(actor, driverID); err != nil {
		return nil, err
	}
	if _, err := uc.requireKind(ctx, driverID, models.ProfileKindDriver); err != nil {
		return nil, err
	}

	expired := false
	ride, err := uc.repo.WithRideLock(ctx, rideID, func(ctx context.Context, ride *models.Ride) (bool, error) {
		if uc.expireAssignmentIfStale(ctx, ride, false) {
			expired = true
			return true, apperrors.Conflict("ride assignment expired")
		}
		if ride.Status != models.RideStatusWaiting {
			return false, apperrors.Conflict("ride is %s, not waiting for acceptance", ride.Status)
		}
		if ride.DriverID != nil && *ride.DriverID != driverID {
			return false, apperrors.Conflict("ride already accepted by another driver")
		}
		if ride.DriverID == nil && ride.TriedDrivers.Contains(driverID) {
			return false, apperrors.Conflict("driver was already offered this ride")
		}

		now := time.Now().UTC()
		ride.DriverID = &driverID
		ride.Status = models.RideStatusAccepted
		ride.AcceptedAt = &now
		ride.TriedDrivers.Add(driverID)
		return true, nil
	})
	uc.publishExpiryOutcome(ctx, expired, ride)
	if err != nil {
		return nil, err
	}

	observability.RideTransitionsTotal.WithLabelValues(string(models.RideStatusAccepted)).Inc()
	uc.publishEvent(ctx, models.RideEventAccepted, ride)
	return ride, nil
}

// StartRide moves an accepted ride to in_progress.
func (uc *rideUC) StartRide(ctx context.Context, actor models.Actor, rideID, driverID uuid.UUID) (*models.Ride, error) {
	if err := ensureActingAs(actor, driverID); err != nil {
		return nil, err
	}
	if _, err := uc.requireKind(ctx, driverID, models.ProfileKindDriver); err != nil {
		return nil, err
	}

	expired := false
	ride, err := uc.repo.WithRideLock(ctx, rideID, func(ctx context.Context, ride *models.Ride) (bool, error) {
		if uc.expireAssignmentIfStale(ctx, ride, false) {
			expired = true
			return true, apperrors.Conflict("ride assignment expired")
		}
		if !ride.AssignedTo(driverID) {
			return false, apperrors.Forbidden("ride is not assigned to this driver")
		}
		if ride.Status != models.RideStatusAccepted {
			return false, apperrors.Conflict("ride is %s, not accepted", ride.Status)
		}

		now := time.Now().UTC()
		ride.Status = models.RideStatusInProgress
		ride.StartedAt = &now
		return true, nil
	})
	uc.publishExpiryOutcome(ctx, expired, ride)
	if err != nil {
		return nil, err
	}

	observability.RideTransitionsTotal.WithLabelValues(string(models.RideStatusInProgress)).Inc()
	uc.publishEvent(ctx, models.RideEventStarted, ride)
	return ride, nil
}

// FinishRide completes an in-progress ride. The assigned driver may finish at
// any time; the passenger only after the ride has been underway for the
// configured minimum.
func (uc *rideUC) FinishRide(ctx context.Context, actor models.Actor, rideID, profileID uuid.UUID) (*models.Ride, error) {
	if err := ensureActingAs(actor, profileID); err != nil {
		return nil, err
	}
	profile, err := uc.profiles.GetProfile(ctx, profileID)
	if err != nil {
		return nil, err
	}

	expired := false
	ride, err := uc.repo.WithRideLock(ctx, rideID, func(ctx context.Context, ride *models.Ride) (bool, error) {
		if uc.expireAssignmentIfStale(ctx, ride, false) {
			expired = true
			return true, apperrors.Conflict("ride assignment expired")
		}

		switch profile.Kind {
		case models.ProfileKindDriver:
			if !ride.AssignedTo(profileID) {
				return false, apperrors.Forbidden("ride is not assigned to this driver")
			}
		case models.ProfileKindPassenger:
			if ride.PassengerID != profileID {
				return false, apperrors.Forbidden("ride does not belong to this passenger")
			}
		default:
			return false, apperrors.Forbidden("profile %s may not finish rides", profileID)
		}

		if ride.Status != models.RideStatusInProgress {
			return false, apperrors.Conflict("ride is %s, not in progress", ride.Status)
		}

		now := time.Now().UTC()
		if profile.Kind == models.ProfileKindPassenger &&
			ride.StartedAt != nil &&
			now.Sub(*ride.StartedAt) < uc.cfg.Dispatch.PassengerFinishAfter {
			return false, apperrors.Conflict(
				"passenger may finish only after the ride has been underway for %s",
				uc.cfg.Dispatch.PassengerFinishAfter)
		}

		ride.Status = models.RideStatusCompleted
		ride.CompletedAt = &now
		ride.TriedDrivers = nil
		ride.ClearDriver()
		return true, nil
	})
	uc.publishExpiryOutcome(ctx, expired, ride)
	if err != nil {
		return nil, err
	}

	observability.RideTransitionsTotal.WithLabelValues(string(models.RideStatusCompleted)).Inc()
	uc.publishEvent(ctx, models.RideEventCompleted, ride)
	return ride, nil
}

// RejectRide lets a driver decline a ride; the ride returns to waiting with
// the driver excluded and is immediately re-dispatched.
func (uc *rideUC) RejectRide(ctx context.Context, actor models.Actor, rideID, driverID uuid.UUID) (*models.Ride, error) {
	if err := ensureActingAs(actor, driverID); err != nil {
		return nil, err
	}
	if _, err := uc.requireKind(ctx, driverID, models.ProfileKindDriver); err != nil {
		return nil, err
	}

	reassigned := false
	ride, err := uc.repo.WithRideLock(ctx, rideID, func(ctx context.Context, ride *models.Ride) (bool, error) {
		if ride.Status != models.RideStatusWaiting && ride.Status != models.RideStatusAccepted {
			return false, apperrors.Conflict("ride is %s and can no longer be rejected", ride.Status)
		}
		if ride.DriverID != nil && *ride.DriverID != driverID {
			return false, apperrors.Forbidden("ride is not assigned to this driver")
		}

		ride.TriedDrivers.Add(driverID)
		ride.ClearDriver()
		ride.Status = models.RideStatusWaiting
		ride.AcceptedAt = nil

		next, dispatchErr := uc.assignNearestDriver(ctx, ride, &driverID, false)
		if dispatchErr != nil {
			uc.logger.Error("Re-dispatch after rejection failed",
				logger.String("ride_id", ride.ID.String()),
				logger.Err(dispatchErr))
		}
		reassigned = next != nil
		return true, nil
	})
	if err != nil {
		return nil, err
	}

	observability.RideTransitionsTotal.WithLabelValues(string(models.RideStatusWaiting)).Inc()
	uc.publishEvent(ctx, models.RideEventRejected, ride)
	if reassigned {
		uc.publishEvent(ctx, models.RideEventAssigned, ride)
	}
	return ride, nil
}

// CancelRide cancels an active ride on the passenger's behalf, subject to the
// post-accept and post-start grace windows.
func (uc *rideUC) CancelRide(ctx context.Context, actor models.Actor, rideID, passengerID uuid.UUID) (*models.Ride, error) {
	if err := ensureActingAs(actor, passengerID); err != nil {
		return nil, err
	}
	if _, err := uc.requireKind(ctx, passengerID, models.ProfileKindPassenger); err != nil {
		return nil, err
	}

	ride, err := uc.repo.WithRideLock(ctx, rideID, func(ctx context.Context, ride *models.Ride) (bool, error) {
		if ride.PassengerID != passengerID {
			return false, apperrors.Forbidden("ride does not belong to this passenger")
		}
		if !ride.Status.IsActive() {
			return false, apperrors.Conflict("ride is already %s", ride.Status)
		}

		now := time.Now().UTC()
		if ride.Status == models.RideStatusAccepted && ride.AcceptedAt != nil &&
			now.Sub(*ride.AcceptedAt) < uc.cfg.Dispatch.CancelGraceAccepted {
			return false, apperrors.Conflict(
				"cancellation is blocked for %s after acceptance",
				uc.cfg.Dispatch.CancelGraceAccepted)
		}
		if ride.Status == models.RideStatusInProgress && ride.StartedAt != nil &&
			now.Sub(*ride.StartedAt) < uc.cfg.Dispatch.CancelGraceStarted {
			return false, apperrors.Conflict(
				"cancellation is blocked for %s after start",
				uc.cfg.Dispatch.CancelGraceStarted)
		}

		ride.Status = models.RideStatusCancelled
		ride.CancelledAt = &now
		ride.TriedDrivers = nil
		ride.ClearDriver()
		return true, nil
	})
	if err != nil {
		return nil, err
	}

	observability.RideTransitionsTotal.WithLabelValues(string(models.RideStatusCancelled)).Inc()
	uc.publishEvent(ctx, models.RideEventCancelled, ride)
	return ride, nil
}

// ReassignRide force-releases a ride's assignment and re-dispatches. Admins
// may reassign any ride; a driver may only release a ride tentatively
// assigned to them.
func (uc *rideUC) ReassignRide(ctx context.Context, actor models.Actor, rideID uuid.UUID, excludeDriverID *uuid.UUID) (*models.Ride, error) {
	if !actor.Admin {
		if _, err := uc.requireKind(ctx, actor.ProfileID, models.ProfileKindDriver); err != nil {
			return nil, err
		}
	}

	reassigned := false
	ride, err := uc.repo.WithRideLock(ctx, rideID, func(ctx context.Context, ride *models.Ride) (bool, error) {
		if !actor.Admin && ride.DriverID != nil && *ride.DriverID != actor.ProfileID {
			return false, apperrors.Forbidden("ride is not assigned to this driver")
		}
		switch ride.Status {
		case models.RideStatusWaiting, models.RideStatusAccepted, models.RideStatusRejected:
		default:
			return false, apperrors.Conflict("ride is %s and cannot be reassigned", ride.Status)
		}

		if excludeDriverID != nil {
			ride.TriedDrivers.Add(*excludeDriverID)
		}
		ride.ClearDriver()
		ride.Status = models.RideStatusWaiting
		ride.AcceptedAt = nil

		next, dispatchErr := uc.assignNearestDriver(ctx, ride, excludeDriverID, false)
		if dispatchErr != nil {
			uc.logger.Error("Re-dispatch after reassignment failed",
				logger.String("ride_id", ride.ID.String()),
				logger.Err(dispatchErr))
		}
		reassigned = next != nil
		return true, nil
	})
	if err != nil {
		return nil, err
	}

	observability.RideTransitionsTotal.WithLabelValues(string(models.RideStatusWaiting)).Inc()
	uc.publishEvent(ctx, models.RideEventReassigned, ride)
	if reassigned {
		uc.publishEvent(ctx, models.RideEventAssigned, ride)
	}
	return ride, nil
}

// publishExpiryOutcome emits the events for an expiry that fired inside a
// transition attempt: the release itself, plus the replacement assignment
// when the re-dispatch found one.
func (uc *rideUC) publishExpiryOutcome(ctx context.Context, expired bool, ride *models.Ride) {
	if !expired || ride == nil {
		return
	}
	uc.publishEvent(ctx, models.RideEventExpired, ride)
	if ride.DriverID != nil {
		uc.publishEvent(ctx, models.RideEventAssigned, ride)
	}
}
