package repository

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/vaipaqueta/dispatch/internal/pkg/constants"
	"github.com/vaipaqueta/dispatch/internal/pkg/database"
	"github.com/vaipaqueta/dispatch/internal/pkg/logger"
	"github.com/vaipaqueta/dispatch/internal/pkg/models"
)

const insertPingQuery = `
	INSERT INTO location_pings (driver_id, latitude, longitude, accuracy_m, created_at)
	VALUES ($1, $2, $3, $4, $5)
	RETURNING id`

// LocationRepo persists pings in PostgreSQL and mirrors the latest position
// per driver into the Redis geo index.
type LocationRepo struct {
	cfg   *models.Config
	db    *sqlx.DB
	redis *database.RedisClient
}

// NewLocationRepository creates a new location repository
func NewLocationRepository(cfg *models.Config, db *sqlx.DB, redis *database.RedisClient) *LocationRepo {
	return &LocationRepo{
		cfg:   cfg,
		db:    db,
		redis: redis,
	}
}

// RecordPing appends the ping to the log and updates the driver's cached
// latest position. The log write is authoritative; a cache failure is logged
// and swallowed so ping ingestion never depends on Redis.
func (r *LocationRepo) RecordPing(ctx context.Context, ping *models.LocationPing) error {
	err := r.db.QueryRowContext(ctx, insertPingQuery,
		ping.DriverID, ping.Latitude, ping.Longitude, ping.AccuracyM, ping.CreatedAt,
	).Scan(&ping.ID)
	if err != nil {
		return fmt.Errorf("failed to insert ping: %w", err)
	}

	r.cacheLatestPosition(ctx, ping)
	return nil
}

func (r *LocationRepo) cacheLatestPosition(ctx context.Context, ping *models.LocationPing) {
	key := fmt.Sprintf(constants.KeyDriverLocation, ping.DriverID)
	fields := map[string]interface{}{
		constants.FieldLatitude:  ping.Latitude,
		constants.FieldLongitude: ping.Longitude,
		constants.FieldTimestamp: ping.CreatedAt.Format(time.RFC3339Nano),
	}
	if ping.AccuracyM != nil {
		fields[constants.FieldAccuracy] = *ping.AccuracyM
	}

	if err := r.redis.HMSet(ctx, key, fields); err != nil {
		logger.Warn("Failed to cache driver position",
			logger.String("driver_id", ping.DriverID.String()),
			logger.Err(err))
		return
	}
	if err := r.redis.GeoAdd(ctx, constants.KeyDriverGeo, ping.Longitude, ping.Latitude, ping.DriverID.String()); err != nil {
		logger.Warn("Failed to index driver position",
			logger.String("driver_id", ping.DriverID.String()),
			logger.Err(err))
	}
}

// NearbyDrivers searches the geo index for drivers around the point, nearest
// first, dropping entries whose cached position is older than the staleness
// window.
func (r *LocationRepo) NearbyDrivers(ctx context.Context, lat, lng, radiusKm float64, limit int) ([]models.NearbyDriver, error) {
	locations, err := r.redis.GeoRadius(ctx, constants.KeyDriverGeo, lng, lat, radiusKm, "km")
	if err != nil {
		return nil, fmt.Errorf("failed to search driver geo index: %w", err)
	}

	cutoff := time.Now().UTC().Add(-r.cfg.Dispatch.PingMaxAge)
	drivers := []models.NearbyDriver{}
	for _, loc := range locations {
		if limit > 0 && len(drivers) >= limit {
			break
		}

		driverID, err := uuid.Parse(loc.Name)
		if err != nil {
			continue
		}

		fields, err := r.redis.HGetAll(ctx, fmt.Sprintf(constants.KeyDriverLocation, driverID))
		if err != nil || len(fields) == 0 {
			continue
		}
		pingedAt, err := time.Parse(time.RFC3339Nano, fields[constants.FieldTimestamp])
		if err != nil || pingedAt.Before(cutoff) {
			continue
		}

		driver := models.NearbyDriver{
			DriverID:   driverID,
			Latitude:   loc.Latitude,
			Longitude:  loc.Longitude,
			DistanceKm: loc.Dist,
			PingedAt:   pingedAt,
		}
		if raw, ok := fields[constants.FieldAccuracy]; ok {
			if acc, parseErr := strconv.ParseFloat(raw, 64); parseErr == nil {
				driver.AccuracyM = &acc
			}
		}
		drivers = append(drivers, driver)
	}

	return drivers, nil
}
