package repository_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/evproyectos/aventados-isw-server/internal/pkg/apperrors"
	"github.com/evproyectos/aventados-isw-server/internal/pkg/models"
	"github.com/evproyectos/aventados-isw-server/services/bookings/repository"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	bookingCols  = []string{"id", "ride_id", "passenger_id", "status", "payment_status", "booked_at", "updated_at"}
	enrichedCols = append(append([]string{}, bookingCols...),
		"ride_driver_id", "ride_origin", "ride_destination", "ride_departure_time", "ride_available_seats", "ride_fee",
		"passenger_user_id", "passenger_name", "passenger_last_name", "passenger_email", "passenger_phone_number")
	bookedAt = time.Date(2024, 5, 1, 6, 0, 0, 0, time.UTC)
)

func setupMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { mockDB.Close() })
	return sqlx.NewDb(mockDB, "sqlmock"), mock
}

func bookingRow(id, rideID, passengerID uuid.UUID, status models.BookingStatus) *sqlmock.Rows {
	return sqlmock.NewRows(bookingCols).
		AddRow(id.String(), rideID.String(), passengerID.String(), string(status), "pending", bookedAt, bookedAt)
}

func TestCreate(t *testing.T) {
	tests := []struct {
		name      string
		booking   *models.Booking
		setupMock func(mock sqlmock.Sqlmock, b *models.Booking)
		wantErr   func(error) bool
	}{
		{
			name:    "stores pending booking",
			booking: &models.Booking{RideID: uuid.New(), PassengerID: uuid.New()},
			setupMock: func(mock sqlmock.Sqlmock, b *models.Booking) {
				mock.ExpectExec(regexp.QuoteMeta("INSERT INTO bookings")).
					WithArgs(sqlmock.AnyArg(), b.RideID, b.PassengerID, "pending", "pending", sqlmock.AnyArg(), sqlmock.AnyArg()).
					WillReturnResult(sqlmock.NewResult(1, 1))
			},
		},
		{
			name:      "missing ride id",
			booking:   &models.Booking{PassengerID: uuid.New()},
			setupMock: func(sqlmock.Sqlmock, *models.Booking) {},
			wantErr:   apperrors.IsValidation,
		},
		{
			name:      "missing passenger id",
			booking:   &models.Booking{RideID: uuid.New()},
			setupMock: func(sqlmock.Sqlmock, *models.Booking) {},
			wantErr:   apperrors.IsValidation,
		},
		{
			name:    "database error",
			booking: &models.Booking{RideID: uuid.New(), PassengerID: uuid.New()},
			setupMock: func(mock sqlmock.Sqlmock, b *models.Booking) {
				mock.ExpectExec(regexp.QuoteMeta("INSERT INTO bookings")).WillReturnError(errors.New("connection reset"))
			},
			wantErr: func(err error) bool { return err != nil && !apperrors.IsDomain(err) },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			db, mock := setupMockDB(t)
			repo := repository.NewBookingRepository(&models.Config{}, db)
			tt.setupMock(mock, tt.booking)

			// Act
			got, err := repo.Create(context.Background(), tt.booking)

			// Assert
			if tt.wantErr != nil {
				assert.True(t, tt.wantErr(err), "unexpected error: %v", err)
				assert.Nil(t, got)
			} else {
				require.NoError(t, err)
				assert.NotEqual(t, uuid.Nil, got.ID)
				assert.Equal(t, models.BookingStatusPending, got.Status)
				assert.Equal(t, models.PaymentStatusPending, got.PaymentStatus)
				assert.False(t, got.BookedAt.IsZero())
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestGetBooking_NotFound(t *testing.T) {
	// Arrange
	db, mock := setupMockDB(t)
	repo := repository.NewBookingRepository(&models.Config{}, db)
	id := uuid.New()
	mock.ExpectQuery(regexp.QuoteMeta("FROM bookings WHERE id = $1")).
		WithArgs(id).
		WillReturnRows(sqlmock.NewRows(bookingCols))

	// Act
	_, err := repo.GetBooking(context.Background(), id)

	// Assert
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))
	assert.Equal(t, "Booking not found", err.Error())
}

func TestFindByRide_JoinsRideAndPassenger(t *testing.T) {
	// Arrange
	db, mock := setupMockDB(t)
	repo := repository.NewBookingRepository(&models.Config{}, db)

	rideID, driverID := uuid.New(), uuid.New()
	known, orphan := uuid.New(), uuid.New()
	departure := time.Date(2024, 5, 1, 7, 30, 0, 0, time.UTC)

	rows := sqlmock.NewRows(enrichedCols).
		AddRow(uuid.NewString(), rideID.String(), known.String(), "pending", "pending", bookedAt, bookedAt,
			driverID.String(), "Alajuela", "San José", departure, 2, 1500.0,
			known.String(), "Ana", "Mora", "ana@example.com", "88887777").
		AddRow(uuid.NewString(), rideID.String(), orphan.String(), "confirmed", "pending", bookedAt, bookedAt,
			driverID.String(), "Alajuela", "San José", departure, 2, 1500.0,
			nil, nil, nil, nil, nil)

	mock.ExpectQuery(regexp.QuoteMeta("LEFT JOIN users u ON u.id = b.passenger_id")).
		WithArgs(rideID).
		WillReturnRows(rows)

	// Act
	list, err := repo.FindByRide(context.Background(), rideID)

	// Assert
	require.NoError(t, err)
	require.Len(t, list, 2)

	assert.Equal(t, driverID, list[0].Ride.DriverID)
	assert.Equal(t, "San José", list[0].Ride.Destination)
	require.NotNil(t, list[0].Passenger)
	assert.Equal(t, "Ana Mora", list[0].Passenger.FullName())

	assert.Equal(t, models.BookingStatusConfirmed, list[1].Status)
	assert.Nil(t, list[1].Passenger)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindByRide_EmptyIsNotNil(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewBookingRepository(&models.Config{}, db)
	mock.ExpectQuery(regexp.QuoteMeta("WHERE b.ride_id = $1")).WillReturnRows(sqlmock.NewRows(enrichedCols))

	list, err := repo.FindByRide(context.Background(), uuid.New())

	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)
}

func TestFindByDriver(t *testing.T) {
	t.Run("driver without rides", func(t *testing.T) {
		// Arrange
		db, mock := setupMockDB(t)
		repo := repository.NewBookingRepository(&models.Config{}, db)
		driverID := uuid.New()
		mock.ExpectQuery(regexp.QuoteMeta("SELECT id FROM rides WHERE driver_id = $1")).
			WithArgs(driverID).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		// Act
		list, hasRides, err := repo.FindByDriver(context.Background(), driverID)

		// Assert
		require.NoError(t, err)
		assert.False(t, hasRides)
		assert.Empty(t, list)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("bookings across rides", func(t *testing.T) {
		// Arrange
		db, mock := setupMockDB(t)
		repo := repository.NewBookingRepository(&models.Config{}, db)
		driverID, rideA, rideB := uuid.New(), uuid.New(), uuid.New()
		departure := time.Date(2024, 5, 1, 7, 30, 0, 0, time.UTC)

		mock.ExpectQuery(regexp.QuoteMeta("SELECT id FROM rides WHERE driver_id = $1")).
			WithArgs(driverID).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(rideA.String()).AddRow(rideB.String()))
		mock.ExpectQuery(regexp.QuoteMeta("WHERE b.ride_id = ANY($1::uuid[])")).
			WithArgs(sqlmock.AnyArg()).
			WillReturnRows(sqlmock.NewRows(enrichedCols).
				AddRow(uuid.NewString(), rideB.String(), uuid.NewString(), "pending", "pending", bookedAt, bookedAt,
					driverID.String(), "Cartago", "Heredia", departure, 1, 900.0,
					nil, nil, nil, nil, nil))

		// Act
		list, hasRides, err := repo.FindByDriver(context.Background(), driverID)

		// Assert
		require.NoError(t, err)
		assert.True(t, hasRides)
		require.Len(t, list, 1)
		assert.Equal(t, rideB, list[0].RideID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestSetStatus(t *testing.T) {
	id, rideID, passengerID := uuid.New(), uuid.New(), uuid.New()
	updateSQL := regexp.QuoteMeta("UPDATE bookings SET status = $2, updated_at = NOW()")
	statusSQL := regexp.QuoteMeta("SELECT status FROM bookings WHERE id = $1")

	tests := []struct {
		name      string
		setupMock func(mock sqlmock.Sqlmock)
		wantErr   func(error) bool
	}{
		{
			name: "pending to cancelled",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(updateSQL).
					WithArgs(id, "cancelled").
					WillReturnRows(bookingRow(id, rideID, passengerID, models.BookingStatusCancelled))
			},
		},
		{
			name: "already confirmed",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(updateSQL).WithArgs(id, "cancelled").WillReturnRows(sqlmock.NewRows(bookingCols))
				mock.ExpectQuery(statusSQL).WithArgs(id).WillReturnRows(sqlmock.NewRows([]string{"status"}).AddRow("confirmed"))
			},
			wantErr: apperrors.IsInvalidTransition,
		},
		{
			name: "missing booking",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(updateSQL).WithArgs(id, "cancelled").WillReturnRows(sqlmock.NewRows(bookingCols))
				mock.ExpectQuery(statusSQL).WithArgs(id).WillReturnRows(sqlmock.NewRows([]string{"status"}))
			},
			wantErr: apperrors.IsNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			db, mock := setupMockDB(t)
			repo := repository.NewBookingRepository(&models.Config{}, db)
			tt.setupMock(mock)

			// Act
			got, err := repo.SetStatus(context.Background(), id, models.BookingStatusCancelled)

			// Assert
			if tt.wantErr != nil {
				assert.True(t, tt.wantErr(err), "unexpected error: %v", err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, models.BookingStatusCancelled, got.Status)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
