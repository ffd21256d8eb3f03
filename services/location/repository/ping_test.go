package repository

import (
	"context"
	"fmt"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vaipaqueta/dispatch/internal/pkg/constants"
	"github.com/vaipaqueta/dispatch/internal/pkg/database"
	"github.com/vaipaqueta/dispatch/internal/pkg/models"
)

func setupMiniredis(t *testing.T) (*miniredis.Miniredis, *database.RedisClient) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})
	return mr, &database.RedisClient{Client: client}
}

func setupMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	return sqlx.NewDb(mockDB, "sqlmock"), mock
}

func testConfig() *models.Config {
	return &models.Config{
		Dispatch: models.DispatchConfig{PingMaxAge: 5 * time.Minute},
	}
}

func TestRecordPing_InsertsAndCaches(t *testing.T) {
	mr, redisClient := setupMiniredis(t)
	db, mock := setupMockDB(t)
	repo := NewLocationRepository(testConfig(), db, redisClient)

	driverID := uuid.New()
	accuracy := 12.5
	ping := &models.LocationPing{
		DriverID:  driverID,
		Latitude:  -22.75,
		Longitude: -43.10,
		AccuracyM: &accuracy,
		CreatedAt: time.Now().UTC(),
	}

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO location_pings")).
		WithArgs(driverID, ping.Latitude, ping.Longitude, &accuracy, ping.CreatedAt).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(7)))

	err := repo.RecordPing(context.Background(), ping)
	require.NoError(t, err)
	assert.Equal(t, int64(7), ping.ID)
	assert.NoError(t, mock.ExpectationsWereMet())

	locationKey := fmt.Sprintf(constants.KeyDriverLocation, driverID)
	assert.True(t, mr.Exists(locationKey))
	assert.True(t, mr.Exists(constants.KeyDriverGeo))
}

func TestRecordPing_CacheFailureIsSwallowed(t *testing.T) {
	mr, redisClient := setupMiniredis(t)
	db, mock := setupMockDB(t)
	repo := NewLocationRepository(testConfig(), db, redisClient)

	driverID := uuid.New()
	ping := &models.LocationPing{
		DriverID:  driverID,
		Latitude:  -22.75,
		Longitude: -43.10,
		CreatedAt: time.Now().UTC(),
	}

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO location_pings")).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(1)))

	// The SQL insert is authoritative; a dead cache must not fail the call.
	mr.Close()

	err := repo.RecordPing(context.Background(), ping)
	assert.NoError(t, err)
}

func TestRecordPing_InsertFailure(t *testing.T) {
	_, redisClient := setupMiniredis(t)
	db, mock := setupMockDB(t)
	repo := NewLocationRepository(testConfig(), db, redisClient)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO location_pings")).
		WillReturnError(assert.AnError)

	err := repo.RecordPing(context.Background(), &models.LocationPing{
		DriverID:  uuid.New(),
		Latitude:  -22.75,
		Longitude: -43.10,
		CreatedAt: time.Now().UTC(),
	})
	assert.Error(t, err)
}

func TestNearbyDrivers_ReturnsFreshDrivers(t *testing.T) {
	_, redisClient := setupMiniredis(t)
	db, _ := setupMockDB(t)
	repo := NewLocationRepository(testConfig(), db, redisClient)

	ctx := context.Background()
	fresh := uuid.New()
	stale := uuid.New()
	now := time.Now().UTC()

	seed := func(id uuid.UUID, lat, lng float64, pingedAt time.Time) {
		require.NoError(t, redisClient.GeoAdd(ctx, constants.KeyDriverGeo, lng, lat, id.String()))
		require.NoError(t, redisClient.HMSet(ctx, fmt.Sprintf(constants.KeyDriverLocation, id), map[string]interface{}{
			constants.FieldLatitude:  lat,
			constants.FieldLongitude: lng,
			constants.FieldTimestamp: pingedAt.Format(time.RFC3339Nano),
		}))
	}
	seed(fresh, -22.7505, -43.10, now)
	seed(stale, -22.7501, -43.10, now.Add(-10*time.Minute))

	drivers, err := repo.NearbyDrivers(ctx, -22.75, -43.10, 3.0, 10)

	require.NoError(t, err)
	require.Len(t, drivers, 1)
	assert.Equal(t, fresh, drivers[0].DriverID)
	assert.InDelta(t, 0.056, drivers[0].DistanceKm, 0.05)
	assert.WithinDuration(t, now, drivers[0].PingedAt, time.Second)
}

func TestNearbyDrivers_RespectsLimit(t *testing.T) {
	_, redisClient := setupMiniredis(t)
	db, _ := setupMockDB(t)
	repo := NewLocationRepository(testConfig(), db, redisClient)

	ctx := context.Background()
	now := time.Now().UTC()
	for i := 0; i < 3; i++ {
		id := uuid.New()
		lat := -22.7501 - float64(i)*0.001
		require.NoError(t, redisClient.GeoAdd(ctx, constants.KeyDriverGeo, -43.10, lat, id.String()))
		require.NoError(t, redisClient.HMSet(ctx, fmt.Sprintf(constants.KeyDriverLocation, id), map[string]interface{}{
			constants.FieldLatitude:  lat,
			constants.FieldLongitude: -43.10,
			constants.FieldTimestamp: now.Format(time.RFC3339Nano),
		}))
	}

	drivers, err := repo.NearbyDrivers(ctx, -22.75, -43.10, 3.0, 2)

	require.NoError(t, err)
	assert.Len(t, drivers, 2)
}

func TestNearbyDrivers_EmptyIndex(t *testing.T) {
	_, redisClient := setupMiniredis(t)
	db, _ := setupMockDB(t)
	repo := NewLocationRepository(testConfig(), db, redisClient)

	drivers, err := repo.NearbyDrivers(context.Background(), -22.75, -43.10, 3.0, 10)

	require.NoError(t, err)
	assert.Empty(t, drivers)
}
