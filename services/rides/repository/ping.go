package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/vaipaqueta/dispatch/internal/pkg/models"
)

const (
	// DISTINCT ON keeps only the newest ping per driver; the join filters
	// out pings from profiles that are not drivers.
	freshDriverPingsQuery = `
		SELECT DISTINCT ON (p.driver_id)
			p.driver_id, p.latitude, p.longitude, p.accuracy_m,
			p.created_at AS pinged_at
		FROM location_pings p
		JOIN profiles pr ON pr.id = p.driver_id AND pr.kind = 'driver'
		WHERE p.created_at >= $1
		ORDER BY p.driver_id, p.created_at DESC`

	lastDriverPingQuery = `
		SELECT driver_id, latitude, longitude, accuracy_m,
			created_at AS pinged_at
		FROM location_pings
		WHERE driver_id = $1
		ORDER BY created_at DESC
		LIMIT 1`
)

// PingRepo is the dispatch-side read view over the append-only ping log.
type PingRepo struct {
	db *sqlx.DB
}

// NewPingRepository creates a new ping read repository
func NewPingRepository(db *sqlx.DB) *PingRepo {
	return &PingRepo{db: db}
}

// FreshDriverPings returns the latest ping per driver newer than since,
// most recent first.
func (r *PingRepo) FreshDriverPings(ctx context.Context, since time.Time) ([]models.DriverPing, error) {
	pings := []models.DriverPing{}
	err := r.db.SelectContext(ctx, &pings, freshDriverPingsQuery, since)
	if err != nil {
		return nil, fmt.Errorf("failed to query fresh driver pings: %w", err)
	}

	// DISTINCT ON orders by driver first; resort most-recent-first.
	sort.Slice(pings, func(i, j int) bool {
		return pings[i].PingedAt.After(pings[j].PingedAt)
	})
	return pings, nil
}

// LastDriverPing returns the driver's most recent ping regardless of age,
// or nil when the driver has never pinged.
func (r *PingRepo) LastDriverPing(ctx context.Context, driverID uuid.UUID) (*models.DriverPing, error) {
	var ping models.DriverPing
	err := r.db.GetContext(ctx, &ping, lastDriverPingQuery, driverID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query last driver ping: %w", err)
	}
	return &ping, nil
}
