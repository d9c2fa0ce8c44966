package repository_test

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/evproyectos/aventados-isw-server/internal/pkg/apperrors"
	"github.com/evproyectos/aventados-isw-server/internal/pkg/models"
	"github.com/evproyectos/aventados-isw-server/services/bookings/repository"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfirmBooking(t *testing.T) {
	id, rideID, passengerID := uuid.New(), uuid.New(), uuid.New()
	confirmSQL := regexp.QuoteMeta("UPDATE bookings SET status = 'confirmed'")
	decrementSQL := regexp.QuoteMeta("WHERE id = $1 AND available_seats > 0")
	seatsCols := []string{"available_seats"}

	tests := []struct {
		name      string
		setupMock func(mock sqlmock.Sqlmock)
		wantErr   func(error) bool
		wantSeats int
	}{
		{
			name: "confirms and takes a seat in one transaction",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectQuery(confirmSQL).WithArgs(id).
					WillReturnRows(bookingRow(id, rideID, passengerID, models.BookingStatusConfirmed))
				mock.ExpectQuery(decrementSQL).WithArgs(rideID).
					WillReturnRows(sqlmock.NewRows(seatsCols).AddRow(2))
				mock.ExpectCommit()
			},
			wantSeats: 2,
		},
		{
			name: "full ride rolls back the confirmation",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectQuery(confirmSQL).WithArgs(id).
					WillReturnRows(bookingRow(id, rideID, passengerID, models.BookingStatusConfirmed))
				mock.ExpectQuery(decrementSQL).WithArgs(rideID).WillReturnRows(sqlmock.NewRows(seatsCols))
				mock.ExpectQuery(regexp.QuoteMeta("SELECT EXISTS")).WithArgs(rideID).
					WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))
				mock.ExpectRollback()
			},
			wantErr: apperrors.IsCapacity,
		},
		{
			name: "terminal booking never reaches the ride",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectQuery(confirmSQL).WithArgs(id).WillReturnRows(sqlmock.NewRows(bookingCols))
				mock.ExpectQuery(regexp.QuoteMeta("SELECT status FROM bookings")).WithArgs(id).
					WillReturnRows(sqlmock.NewRows([]string{"status"}).AddRow("confirmed"))
				mock.ExpectRollback()
			},
			wantErr: apperrors.IsInvalidTransition,
		},
		{
			name: "unknown booking",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectQuery(confirmSQL).WithArgs(id).WillReturnRows(sqlmock.NewRows(bookingCols))
				mock.ExpectQuery(regexp.QuoteMeta("SELECT status FROM bookings")).WithArgs(id).
					WillReturnRows(sqlmock.NewRows([]string{"status"}))
				mock.ExpectRollback()
			},
			wantErr: apperrors.IsNotFound,
		},
		{
			name: "store failure during decrement rolls back",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectQuery(confirmSQL).WithArgs(id).
					WillReturnRows(bookingRow(id, rideID, passengerID, models.BookingStatusConfirmed))
				mock.ExpectQuery(decrementSQL).WithArgs(rideID).WillReturnError(errors.New("connection reset"))
				mock.ExpectRollback()
			},
			wantErr: func(err error) bool { return err != nil && !apperrors.IsDomain(err) },
		},
		{
			name: "begin failure",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin().WillReturnError(errors.New("too many connections"))
			},
			wantErr: func(err error) bool { return err != nil && !apperrors.IsDomain(err) },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			db, mock := setupMockDB(t)
			repo := repository.NewBookingRepository(&models.Config{}, db)
			tt.setupMock(mock)

			// Act
			got, seatsLeft, err := repo.ConfirmBooking(context.Background(), id)

			// Assert
			if tt.wantErr != nil {
				assert.True(t, tt.wantErr(err), "unexpected error: %v", err)
				assert.Nil(t, got)
			} else {
				require.NoError(t, err)
				assert.Equal(t, models.BookingStatusConfirmed, got.Status)
				assert.Equal(t, rideID, got.RideID)
				assert.Equal(t, tt.wantSeats, seatsLeft)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
