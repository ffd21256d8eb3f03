package usecase

import (
	"context"
	"time"

	"github.com/vaipaqueta/dispatch/internal/pkg/apperrors"
	"github.com/vaipaqueta/dispatch/internal/pkg/logger"
	"github.com/vaipaqueta/dispatch/internal/pkg/models"
	"github.com/vaipaqueta/dispatch/internal/pkg/observability"
	"github.com/vaipaqueta/dispatch/services/location"
)

type locationUC struct {
	cfg      *models.Config
	repo     location.LocationRepo
	rides    location.RideReader
	profiles location.ProfileReader
	gw       location.LocationGW
	logger   *logger.ZapLogger
}

// NewLocationUC creates the location usecase
func NewLocationUC(
	cfg *models.Config,
	repo location.LocationRepo,
	rides location.RideReader,
	profiles location.ProfileReader,
	gw location.LocationGW,
	zapLogger *logger.ZapLogger,
) location.LocationUC {
	return &locationUC{
		cfg:      cfg,
		repo:     repo,
		rides:    rides,
		profiles: profiles,
		gw:       gw,
		logger:   zapLogger,
	}
}

// SubmitPing records a driver location report, emits the internal ping event
// that feeds the opportunistic match, and mirrors the position to ride
// subscribers when the driver is serving an active ride. Only the recording
// step can fail the call.
func (uc *locationUC) SubmitPing(ctx context.Context, actor models.Actor, sub *location.PingSubmission) (*models.LocationPing, error) {
	driverID := actor.ProfileID
	if sub.DriverID != nil {
		if !actor.Admin && *sub.DriverID != actor.ProfileID {
			return nil, apperrors.Forbidden("actor may not submit pings for driver %s", *sub.DriverID)
		}
		driverID = *sub.DriverID
	}

	profile, err := uc.profiles.GetProfile(ctx, driverID)
	if err != nil {
		return nil, err
	}
	if profile.Kind != models.ProfileKindDriver {
		return nil, apperrors.Forbidden("profile %s is not a driver", driverID)
	}

	if sub.Latitude < -90 || sub.Latitude > 90 || sub.Longitude < -180 || sub.Longitude > 180 {
		return nil, apperrors.InvalidInput("coordinates out of range")
	}
	if sub.AccuracyM != nil && *sub.AccuracyM < 0 {
		return nil, apperrors.InvalidInput("accuracy must be non-negative")
	}

	ping := &models.LocationPing{
		DriverID:  driverID,
		Latitude:  sub.Latitude,
		Longitude: sub.Longitude,
		AccuracyM: sub.AccuracyM,
		CreatedAt: time.Now().UTC(),
	}
	if err := uc.repo.RecordPing(ctx, ping); err != nil {
		return nil, err
	}
	observability.PingsRecordedTotal.Inc()

	event := &models.PingEvent{
		DriverID:  ping.DriverID,
		Latitude:  ping.Latitude,
		Longitude: ping.Longitude,
		AccuracyM: ping.AccuracyM,
		PingedAt:  ping.CreatedAt,
	}
	if err := uc.gw.PublishPingEvent(ctx, event); err != nil {
		uc.logger.Error("Failed to publish ping event",
			logger.String("driver_id", driverID.String()),
			logger.Err(err))
	}

	uc.notifyRideSubscribers(ctx, ping)
	return ping, nil
}

// notifyRideSubscribers mirrors the ping outward when the driver is on an
// active ride. Best-effort on every step.
func (uc *locationUC) notifyRideSubscribers(ctx context.Context, ping *models.LocationPing) {
	ride, err := uc.rides.ActiveRideByDriver(ctx, ping.DriverID)
	if err != nil {
		uc.logger.Error("Failed to look up active ride for ping",
			logger.String("driver_id", ping.DriverID.String()),
			logger.Err(err))
		return
	}
	if ride == nil {
		return
	}

	event := &models.DriverLocationEvent{
		DriverID:  ping.DriverID,
		RideID:    ride.ID,
		Latitude:  ping.Latitude,
		Longitude: ping.Longitude,
		AccuracyM: ping.AccuracyM,
		PingedAt:  ping.CreatedAt,
	}
	if err := uc.gw.PublishDriverLocation(ctx, event); err != nil {
		uc.logger.Error("Failed to publish driver location",
			logger.String("driver_id", ping.DriverID.String()),
			logger.String("ride_id", ride.ID.String()),
			logger.Err(err))
	}
}

// NearbyDrivers returns fresh-pinged drivers around a point, nearest first.
func (uc *locationUC) NearbyDrivers(ctx context.Context, lat, lng, radiusKm float64, limit int) ([]models.NearbyDriver, error) {
	if lat < -90 || lat > 90 || lng < -180 || lng > 180 {
		return nil, apperrors.InvalidInput("coordinates out of range")
	}
	if radiusKm <= 0 {
		radiusKm = uc.cfg.Dispatch.MatchRadiusKm
	}
	if limit <= 0 {
		limit = uc.cfg.Dispatch.MatchCandidateLimit
	}
	return uc.repo.NearbyDrivers(ctx, lat, lng, radiusKm, limit)
}
