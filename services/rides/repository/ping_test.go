package repository_test

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vaipaqueta/dispatch/internal/pkg/apperrors"
	"github.com/vaipaqueta/dispatch/internal/pkg/models"
	"github.com/vaipaqueta/dispatch/services/rides/repository"
)

var pingCols = []string{"driver_id", "latitude", "longitude", "accuracy_m", "pinged_at"}

func TestFreshDriverPings_SortedMostRecentFirst(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewPingRepository(db)

	older := uuid.New()
	newer := uuid.New()
	now := time.Now().UTC()
	since := now.Add(-5 * time.Minute)

	// DISTINCT ON returns rows ordered by driver id, not recency.
	rows := sqlmock.NewRows(pingCols).
		AddRow(older, -22.75, -43.10, nil, now.Add(-3*time.Minute)).
		AddRow(newer, -22.76, -43.11, nil, now.Add(-time.Minute))

	mock.ExpectQuery(regexp.QuoteMeta("SELECT DISTINCT ON (p.driver_id)")).
		WithArgs(since).
		WillReturnRows(rows)

	pings, err := repo.FreshDriverPings(context.Background(), since)

	require.NoError(t, err)
	require.Len(t, pings, 2)
	assert.Equal(t, newer, pings[0].DriverID)
	assert.Equal(t, older, pings[1].DriverID)
}

func TestFreshDriverPings_Empty(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewPingRepository(db)

	since := time.Now().UTC()
	mock.ExpectQuery(regexp.QuoteMeta("SELECT DISTINCT ON (p.driver_id)")).
		WithArgs(since).
		WillReturnRows(sqlmock.NewRows(pingCols))

	pings, err := repo.FreshDriverPings(context.Background(), since)

	require.NoError(t, err)
	assert.Empty(t, pings)
}

func TestLastDriverPing_Success(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewPingRepository(db)

	driverID := uuid.New()
	pingedAt := time.Now().UTC()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT driver_id, latitude, longitude")).
		WithArgs(driverID).
		WillReturnRows(sqlmock.NewRows(pingCols).
			AddRow(driverID, -22.75, -43.10, 8.0, pingedAt))

	ping, err := repo.LastDriverPing(context.Background(), driverID)

	require.NoError(t, err)
	require.NotNil(t, ping)
	assert.Equal(t, driverID, ping.DriverID)
	require.NotNil(t, ping.AccuracyM)
	assert.Equal(t, 8.0, *ping.AccuracyM)
}

func TestLastDriverPing_NeverPingedReturnsNil(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewPingRepository(db)

	driverID := uuid.New()
	mock.ExpectQuery(regexp.QuoteMeta("SELECT driver_id, latitude, longitude")).
		WithArgs(driverID).
		WillReturnRows(sqlmock.NewRows(pingCols))

	ping, err := repo.LastDriverPing(context.Background(), driverID)

	require.NoError(t, err)
	assert.Nil(t, ping)
}

func TestGetProfile_Success(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewProfileRepository(db)

	profileID := uuid.New()
	now := time.Now().UTC()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, kind, name")).
		WithArgs(profileID).
		WillReturnRows(sqlmock.NewRows([]string{"id", "kind", "name", "phone", "platform", "created_at", "updated_at"}).
			AddRow(profileID, "driver", "Jo", "", "", now, now))

	profile, err := repo.GetProfile(context.Background(), profileID)

	require.NoError(t, err)
	assert.Equal(t, profileID, profile.ID)
	assert.Equal(t, models.ProfileKindDriver, profile.Kind)
}

func TestGetProfile_NotFound(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewProfileRepository(db)

	profileID := uuid.New()
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, kind, name")).
		WithArgs(profileID).
		WillReturnRows(sqlmock.NewRows([]string{"id", "kind", "name", "phone", "platform", "created_at", "updated_at"}))

	_, err := repo.GetProfile(context.Background(), profileID)

	assert.True(t, apperrors.Is(err, apperrors.KindNotFound))
}
