package repository_test

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/vaipaqueta/dispatch/internal/pkg/apperrors"
	"github.com/vaipaqueta/dispatch/internal/pkg/models"
	"github.com/vaipaqueta/dispatch/services/rides/repository"
)

func setupMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	mockDB, mock, err := sqlmock.New()
	assert.NoError(t, err)
	db := sqlx.NewDb(mockDB, "sqlmock")
	return db, mock
}

var rideCols = []string{
	"id", "passenger_id", "driver_id", "status", "seats",
	"origin_lat", "origin_lng", "origin_address",
	"destination_lat", "destination_lng", "destination_address",
	"tried_drivers", "created_at", "updated_at",
	"accepted_at", "started_at", "completed_at", "cancelled_at",
}

func rideRow(id, passengerID uuid.UUID, status models.RideStatus) *sqlmock.Rows {
	now := time.Now().UTC()
	return sqlmock.NewRows(rideCols).AddRow(
		id, passengerID, nil, status, 1,
		-22.75, -43.10, "",
		-22.90, -43.17, "",
		[]byte("[]"), now, now,
		nil, nil, nil, nil,
	)
}

func TestCreateRequestedRide_Success(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewRideRepository(&models.Config{}, db)

	ride := &models.Ride{
		ID:          uuid.New(),
		PassengerID: uuid.New(),
		Status:      models.RideStatusWaiting,
		Seats:       1,
		CreatedAt:   time.Now().UTC(),
		UpdatedAt:   time.Now().UTC(),
	}

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO rides")).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := repo.CreateRequestedRide(context.Background(), ride)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateRequestedRide_ActiveRideConflict(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewRideRepository(&models.Config{}, db)

	// The NOT EXISTS guard rejects the insert without an error.
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO rides")).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.CreateRequestedRide(context.Background(), &models.Ride{
		ID:          uuid.New(),
		PassengerID: uuid.New(),
		Status:      models.RideStatusWaiting,
	})
	assert.True(t, apperrors.Is(err, apperrors.KindConflict))
}

func TestCreateRequestedRide_UniqueViolationConflict(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewRideRepository(&models.Config{}, db)

	// A concurrent request that slipped past the NOT EXISTS guard lands on
	// the partial unique index instead; the loser still gets a conflict.
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO rides")).
		WillReturnError(&pgconn.PgError{
			Code:           "23505",
			ConstraintName: "rides_one_active_per_passenger",
		})

	err := repo.CreateRequestedRide(context.Background(), &models.Ride{
		ID:          uuid.New(),
		PassengerID: uuid.New(),
		Status:      models.RideStatusWaiting,
	})
	assert.True(t, apperrors.Is(err, apperrors.KindConflict))
}

func TestGetRide_Success(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewRideRepository(&models.Config{}, db)

	rideID := uuid.New()
	passengerID := uuid.New()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT")).
		WithArgs(rideID).
		WillReturnRows(rideRow(rideID, passengerID, models.RideStatusWaiting))

	ride, err := repo.GetRide(context.Background(), rideID)
	assert.NoError(t, err)
	assert.Equal(t, rideID, ride.ID)
	assert.Equal(t, passengerID, ride.PassengerID)
	assert.Nil(t, ride.DriverID)
	assert.Empty(t, ride.TriedDrivers)
}

func TestGetRide_NotFound(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewRideRepository(&models.Config{}, db)

	rideID := uuid.New()
	mock.ExpectQuery(regexp.QuoteMeta("SELECT")).
		WithArgs(rideID).
		WillReturnRows(sqlmock.NewRows(rideCols))

	_, err := repo.GetRide(context.Background(), rideID)
	assert.True(t, apperrors.Is(err, apperrors.KindNotFound))
}

func TestWithRideLock_SavesMutation(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewRideRepository(&models.Config{}, db)

	rideID := uuid.New()
	driverID := uuid.New()

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("FOR UPDATE")).
		WithArgs(rideID).
		WillReturnRows(rideRow(rideID, uuid.New(), models.RideStatusWaiting))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE rides")).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	ride, err := repo.WithRideLock(context.Background(), rideID, func(_ context.Context, ride *models.Ride) (bool, error) {
		ride.DriverID = &driverID
		return true, nil
	})

	assert.NoError(t, err)
	assert.Equal(t, driverID, *ride.DriverID)
	assert.False(t, ride.UpdatedAt.IsZero())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWithRideLock_NoSaveRollsBack(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewRideRepository(&models.Config{}, db)

	rideID := uuid.New()

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("FOR UPDATE")).
		WithArgs(rideID).
		WillReturnRows(rideRow(rideID, uuid.New(), models.RideStatusCompleted))
	mock.ExpectRollback()

	ride, err := repo.WithRideLock(context.Background(), rideID, func(_ context.Context, ride *models.Ride) (bool, error) {
		return false, apperrors.Conflict("ride is already %s", ride.Status)
	})

	assert.True(t, apperrors.Is(err, apperrors.KindConflict))
	assert.Equal(t, models.RideStatusCompleted, ride.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWithRideLock_SavesDespiteBusinessError(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewRideRepository(&models.Config{}, db)

	rideID := uuid.New()

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("FOR UPDATE")).
		WithArgs(rideID).
		WillReturnRows(rideRow(rideID, uuid.New(), models.RideStatusWaiting))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE rides")).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	// A repair made inside fn must persist even though fn also fails the
	// caller's transition.
	_, err := repo.WithRideLock(context.Background(), rideID, func(_ context.Context, ride *models.Ride) (bool, error) {
		ride.ClearDriver()
		return true, apperrors.Conflict("ride assignment expired")
	})

	assert.True(t, apperrors.Is(err, apperrors.KindConflict))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWithRideLock_NotFound(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewRideRepository(&models.Config{}, db)

	rideID := uuid.New()

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("FOR UPDATE")).
		WithArgs(rideID).
		WillReturnRows(sqlmock.NewRows(rideCols))
	mock.ExpectRollback()

	_, err := repo.WithRideLock(context.Background(), rideID, func(_ context.Context, _ *models.Ride) (bool, error) {
		t.Fatal("mutator must not run without a locked row")
		return false, nil
	})

	assert.True(t, apperrors.Is(err, apperrors.KindNotFound))
}

func TestActiveRideByPassenger_NoneReturnsNil(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewRideRepository(&models.Config{}, db)

	passengerID := uuid.New()
	mock.ExpectQuery(regexp.QuoteMeta("SELECT")).
		WithArgs(passengerID).
		WillReturnRows(sqlmock.NewRows(rideCols))

	ride, err := repo.ActiveRideByPassenger(context.Background(), passengerID)
	assert.NoError(t, err)
	assert.Nil(t, ride)
}

func TestActiveRideByDriver_Success(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewRideRepository(&models.Config{}, db)

	rideID := uuid.New()
	driverID := uuid.New()
	now := time.Now().UTC()
	rows := sqlmock.NewRows(rideCols).AddRow(
		rideID, uuid.New(), driverID, models.RideStatusAccepted, 1,
		-22.75, -43.10, "",
		-22.90, -43.17, "",
		[]byte(`["`+driverID.String()+`"]`), now, now,
		now, nil, nil, nil,
	)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT")).
		WithArgs(driverID).
		WillReturnRows(rows)

	ride, err := repo.ActiveRideByDriver(context.Background(), driverID)
	assert.NoError(t, err)
	assert.Equal(t, rideID, ride.ID)
	assert.True(t, ride.AssignedTo(driverID))
	assert.True(t, ride.TriedDrivers.Contains(driverID))
	assert.NotNil(t, ride.AcceptedAt)
}

func TestWaitingUnassigned_Success(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewRideRepository(&models.Config{}, db)

	first := uuid.New()
	second := uuid.New()
	now := time.Now().UTC()
	rows := sqlmock.NewRows(rideCols).
		AddRow(first, uuid.New(), nil, models.RideStatusWaiting, 1,
			-22.75, -43.10, "", -22.90, -43.17, "", []byte("[]"), now, now, nil, nil, nil, nil).
		AddRow(second, uuid.New(), nil, models.RideStatusWaiting, 2,
			-22.76, -43.11, "", -22.91, -43.18, "", []byte("[]"), now, now, nil, nil, nil, nil)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT")).
		WithArgs(50).
		WillReturnRows(rows)

	rideList, err := repo.WaitingUnassigned(context.Background(), 50)
	assert.NoError(t, err)
	assert.Len(t, rideList, 2)
	assert.Equal(t, first, rideList[0].ID)
}
