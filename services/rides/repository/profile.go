package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/vaipaqueta/dispatch/internal/pkg/apperrors"
	"github.com/vaipaqueta/dispatch/internal/pkg/models"
)

const getProfileQuery = `
	SELECT id, kind, name, phone, platform, created_at, updated_at
	FROM profiles
	WHERE id = $1`

// ProfileRepo reads profiles owned by the account system.
type ProfileRepo struct {
	db *sqlx.DB
}

// NewProfileRepository creates a new profile repository
func NewProfileRepository(db *sqlx.DB) *ProfileRepo {
	return &ProfileRepo{db: db}
}

// GetProfile retrieves a profile by ID
func (r *ProfileRepo) GetProfile(ctx context.Context, profileID uuid.UUID) (*models.Profile, error) {
	var profile models.Profile
	err := r.db.GetContext(ctx, &profile, getProfileQuery, profileID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.NotFound("profile %s not found", profileID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}
	return &profile, nil
}
