package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/vaipaqueta/dispatch/internal/pkg/apperrors"
	"github.com/vaipaqueta/dispatch/internal/pkg/models"
	"github.com/vaipaqueta/dispatch/services/rides"
)

const rideColumns = `
	id, passenger_id, driver_id, status, seats,
	origin_lat, origin_lng, origin_address,
	destination_lat, destination_lng, destination_address,
	tried_drivers, created_at, updated_at,
	accepted_at, started_at, completed_at, cancelled_at`

const (
	getRideQuery = `SELECT` + rideColumns + `
		FROM rides WHERE id = $1`

	getRideForUpdateQuery = getRideQuery + ` FOR UPDATE`

	// The NOT EXISTS guard catches a still-active ride cheaply without an
	// error round trip. It does not serialize concurrent inserts; the
	// rides_one_active_per_passenger partial unique index is what enforces
	// the invariant when two requests race.
	insertRideQuery = `
		INSERT INTO rides (
			id, passenger_id, driver_id, status, seats,
			origin_lat, origin_lng, origin_address,
			destination_lat, destination_lng, destination_address,
			tried_drivers, created_at, updated_at
		)
		SELECT
			:id, :passenger_id, :driver_id, :status, :seats,
			:origin_lat, :origin_lng, :origin_address,
			:destination_lat, :destination_lng, :destination_address,
			:tried_drivers, :created_at, :updated_at
		WHERE NOT EXISTS (
			SELECT 1 FROM rides
			WHERE passenger_id = :passenger_id
			AND status IN ('waiting', 'accepted', 'in_progress')
		)`

	updateRideQuery = `
		UPDATE rides SET
			driver_id = :driver_id,
			status = :status,
			seats = :seats,
			tried_drivers = :tried_drivers,
			updated_at = :updated_at,
			accepted_at = :accepted_at,
			started_at = :started_at,
			completed_at = :completed_at,
			cancelled_at = :cancelled_at
		WHERE id = :id`

	activeRideByPassengerQuery = `SELECT` + rideColumns + `
		FROM rides
		WHERE passenger_id = $1
		AND status IN ('waiting', 'accepted', 'in_progress')
		ORDER BY created_at DESC
		LIMIT 1`

	activeRideByDriverQuery = `SELECT` + rideColumns + `
		FROM rides
		WHERE driver_id = $1
		AND status IN ('waiting', 'accepted', 'in_progress')
		ORDER BY created_at DESC
		LIMIT 1`

	listRidesByProfileQuery = `SELECT` + rideColumns + `
		FROM rides
		WHERE passenger_id = $1 OR driver_id = $1
		ORDER BY created_at DESC
		LIMIT $2`

	waitingUnassignedQuery = `SELECT` + rideColumns + `
		FROM rides
		WHERE status = 'waiting' AND driver_id IS NULL
		ORDER BY created_at DESC
		LIMIT $1`
)

// RideRepo persists rides in PostgreSQL. All read-modify-write mutations go
// through WithRideLock; plain reads never block writers.
type RideRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewRideRepository creates a new ride repository
func NewRideRepository(cfg *models.Config, db *sqlx.DB) *RideRepo {
	return &RideRepo{
		cfg: cfg,
		db:  db,
	}
}

// SQLSTATE for unique_violation.
const pgUniqueViolation = "23505"

// CreateRequestedRide inserts a new waiting ride. Returns a conflict error
// when the passenger already has an active ride, including when a concurrent
// request wins the race and this insert hits the partial unique index.
func (r *RideRepo) CreateRequestedRide(ctx context.Context, ride *models.Ride) error {
	res, err := sqlx.NamedExecContext(ctx, r.db, insertRideQuery, ride)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return apperrors.Conflict("passenger already has an active ride")
		}
		return fmt.Errorf("failed to insert ride: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read insert result: %w", err)
	}
	if rows == 0 {
		return apperrors.Conflict("passenger already has an active ride")
	}

	return nil
}

// GetRide retrieves a ride by ID
func (r *RideRepo) GetRide(ctx context.Context, rideID uuid.UUID) (*models.Ride, error) {
	var ride models.Ride
	err := r.db.GetContext(ctx, &ride, getRideQuery, rideID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.NotFound("ride %s not found", rideID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get ride: %w", err)
	}
	return &ride, nil
}

// WithRideLock acquires the row lock for the ride, applies fn, and writes the
// mutated row back when fn asks for it. The write is committed even when fn
// also returns a business error; fn's error is always propagated.
func (r *RideRepo) WithRideLock(ctx context.Context, rideID uuid.UUID, fn rides.RideMutator) (*models.Ride, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var ride models.Ride
	err = tx.GetContext(ctx, &ride, getRideForUpdateQuery, rideID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.NotFound("ride %s not found", rideID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to lock ride: %w", err)
	}

	save, fnErr := fn(ctx, &ride)
	if !save {
		return &ride, fnErr
	}

	ride.UpdatedAt = time.Now().UTC()
	if _, err := sqlx.NamedExecContext(ctx, tx, updateRideQuery, &ride); err != nil {
		return nil, fmt.Errorf("failed to update ride: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit ride update: %w", err)
	}

	return &ride, fnErr
}

// ActiveRideByPassenger retrieves the passenger's active ride, or nil
func (r *RideRepo) ActiveRideByPassenger(ctx context.Context, passengerID uuid.UUID) (*models.Ride, error) {
	var ride models.Ride
	err := r.db.GetContext(ctx, &ride, activeRideByPassengerQuery, passengerID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get active ride for passenger: %w", err)
	}
	return &ride, nil
}

// ActiveRideByDriver retrieves the driver's active ride, or nil
func (r *RideRepo) ActiveRideByDriver(ctx context.Context, driverID uuid.UUID) (*models.Ride, error) {
	var ride models.Ride
	err := r.db.GetContext(ctx, &ride, activeRideByDriverQuery, driverID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get active ride for driver: %w", err)
	}
	return &ride, nil
}

// ListRidesByProfile retrieves the newest rides where the profile is a party
func (r *RideRepo) ListRidesByProfile(ctx context.Context, profileID uuid.UUID, limit int) ([]*models.Ride, error) {
	rideList := []*models.Ride{}
	err := r.db.SelectContext(ctx, &rideList, listRidesByProfileQuery, profileID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list rides: %w", err)
	}
	return rideList, nil
}

// WaitingUnassigned retrieves the newest waiting rides with no driver
func (r *RideRepo) WaitingUnassigned(ctx context.Context, limit int) ([]*models.Ride, error) {
	rideList := []*models.Ride{}
	err := r.db.SelectContext(ctx, &rideList, waitingUnassignedQuery, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list waiting rides: %w", err)
	}
	return rideList, nil
}
