package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/evproyectos/aventados-isw-server/internal/pkg/apperrors"
	"github.com/evproyectos/aventados-isw-server/internal/pkg/logger"
	"github.com/evproyectos/aventados-isw-server/internal/pkg/models"
	nrpkg "github.com/evproyectos/aventados-isw-server/internal/pkg/newrelic"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

const bookingColumns = `id, ride_id, passenger_id, status, payment_status, booked_at, updated_at`

// enrichedSelect joins the ride summary and the passenger identity onto each booking.
// users is LEFT JOINed so a booking whose passenger row is gone is still returned.
const enrichedSelect = `
	SELECT b.id, b.ride_id, b.passenger_id, b.status, b.payment_status, b.booked_at, b.updated_at,
		r.driver_id AS ride_driver_id,
		r.origin AS ride_origin,
		r.destination AS ride_destination,
		r.departure_time AS ride_departure_time,
		r.available_seats AS ride_available_seats,
		r.fee AS ride_fee,
		u.id AS passenger_user_id,
		u.name AS passenger_name,
		u.last_name AS passenger_last_name,
		u.email AS passenger_email,
		u.phone_number AS passenger_phone_number
	FROM bookings b
	JOIN rides r ON r.id = b.ride_id
	LEFT JOIN users u ON u.id = b.passenger_id
`

type bookingRow struct {
	models.Booking

	RideDriverID       uuid.UUID `db:"ride_driver_id"`
	RideOrigin         string    `db:"ride_origin"`
	RideDestination    string    `db:"ride_destination"`
	RideDepartureTime  time.Time `db:"ride_departure_time"`
	RideAvailableSeats int       `db:"ride_available_seats"`
	RideFee            float64   `db:"ride_fee"`

	PassengerUserID      uuid.NullUUID  `db:"passenger_user_id"`
	PassengerName        sql.NullString `db:"passenger_name"`
	PassengerLastName    sql.NullString `db:"passenger_last_name"`
	PassengerEmail       sql.NullString `db:"passenger_email"`
	PassengerPhoneNumber sql.NullString `db:"passenger_phone_number"`
}

func (row *bookingRow) toModel() *models.Booking {
	b := row.Booking
	b.Ride = &models.RideSummary{
		ID:             b.RideID,
		DriverID:       row.RideDriverID,
		Origin:         row.RideOrigin,
		Destination:    row.RideDestination,
		DepartureTime:  row.RideDepartureTime,
		AvailableSeats: row.RideAvailableSeats,
		Fee:            row.RideFee,
	}
	if row.PassengerUserID.Valid {
		b.Passenger = &models.UserProfile{
			ID:          row.PassengerUserID.UUID,
			Name:        row.PassengerName.String,
			LastName:    row.PassengerLastName.String,
			Email:       row.PassengerEmail.String,
			PhoneNumber: row.PassengerPhoneNumber.String,
		}
	}
	return &b
}

type BookingRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

func NewBookingRepository(
	cfg *models.Config,
	db *sqlx.DB,
) *BookingRepo {
	logger.Debug("Initializing booking repository")
	return &BookingRepo{
		cfg: cfg,
		db:  db,
	}
}

func bookingNotFound(id uuid.UUID) error {
	return apperrors.NotFoundError{Resource: "booking", ID: id.String(), Msg: "Booking not found"}
}

// Create stores a new pending booking. It never touches the ride's seats.
func (r *BookingRepo) Create(ctx context.Context, booking *models.Booking) (*models.Booking, error) {
	switch {
	case booking.RideID == uuid.Nil:
		return nil, apperrors.NewValidation("ride_id", "ride_id is required")
	case booking.PassengerID == uuid.Nil:
		return nil, apperrors.NewValidation("passenger_id", "passenger_id is required")
	}

	if booking.ID == uuid.Nil {
		booking.ID = uuid.New()
	}
	now := time.Now().UTC()
	booking.Status = models.BookingStatusPending
	booking.PaymentStatus = models.PaymentStatusPending
	booking.BookedAt = now
	booking.UpdatedAt = now

	query := `
		INSERT INTO bookings (` + bookingColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	err := nrpkg.WithDatastoreSegment(ctx, "bookings", "INSERT", func() error {
		_, err := r.db.ExecContext(ctx, query,
			booking.ID,
			booking.RideID,
			booking.PassengerID,
			booking.Status,
			booking.PaymentStatus,
			booking.BookedAt,
			booking.UpdatedAt,
		)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create booking: %w", err)
	}

	return booking, nil
}

// GetBooking retrieves a booking by its ID
func (r *BookingRepo) GetBooking(ctx context.Context, id uuid.UUID) (*models.Booking, error) {
	var booking models.Booking
	err := nrpkg.WithDatastoreSegment(ctx, "bookings", "SELECT", func() error {
		return r.db.GetContext(ctx, &booking, `SELECT `+bookingColumns+` FROM bookings WHERE id = $1`, id)
	})
	if errors.Is(err, sql.ErrNoRows) {
		return nil, bookingNotFound(id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get booking: %w", err)
	}
	return &booking, nil
}

func (r *BookingRepo) selectEnriched(ctx context.Context, where string, args ...interface{}) ([]*models.Booking, error) {
	var rows []bookingRow
	query := enrichedSelect + where + ` ORDER BY b.booked_at`
	err := nrpkg.WithDatastoreSegment(ctx, "bookings", "SELECT", func() error {
		return r.db.SelectContext(ctx, &rows, query, args...)
	})
	if err != nil {
		return nil, err
	}

	result := make([]*models.Booking, 0, len(rows))
	for i := range rows {
		result = append(result, rows[i].toModel())
	}
	return result, nil
}

// FindByRide returns the bookings of one ride, oldest first
func (r *BookingRepo) FindByRide(ctx context.Context, rideID uuid.UUID) ([]*models.Booking, error) {
	list, err := r.selectEnriched(ctx, `WHERE b.ride_id = $1`, rideID)
	if err != nil {
		return nil, fmt.Errorf("failed to find bookings by ride: %w", err)
	}
	return list, nil
}

// FindByPassenger returns the bookings made by one passenger, oldest first
func (r *BookingRepo) FindByPassenger(ctx context.Context, passengerID uuid.UUID) ([]*models.Booking, error) {
	list, err := r.selectEnriched(ctx, `WHERE b.passenger_id = $1`, passengerID)
	if err != nil {
		return nil, fmt.Errorf("failed to find bookings by passenger: %w", err)
	}
	return list, nil
}

// FindByDriver resolves the driver's rides first, then returns the bookings on any of them
func (r *BookingRepo) FindByDriver(ctx context.Context, driverID uuid.UUID) ([]*models.Booking, bool, error) {
	var rideIDs []string
	err := nrpkg.WithDatastoreSegment(ctx, "rides", "SELECT", func() error {
		return r.db.SelectContext(ctx, &rideIDs, `SELECT id FROM rides WHERE driver_id = $1`, driverID)
	})
	if err != nil {
		return nil, false, fmt.Errorf("failed to find driver rides: %w", err)
	}
	if len(rideIDs) == 0 {
		return []*models.Booking{}, false, nil
	}

	list, err := r.selectEnriched(ctx, `WHERE b.ride_id = ANY($1::uuid[])`, pq.Array(rideIDs))
	if err != nil {
		return nil, true, fmt.Errorf("failed to find bookings by driver: %w", err)
	}
	return list, true, nil
}

// SetStatus moves a pending booking to status. Terminal bookings are left untouched.
func (r *BookingRepo) SetStatus(ctx context.Context, id uuid.UUID, status models.BookingStatus) (*models.Booking, error) {
	query := `
		UPDATE bookings SET status = $2, updated_at = NOW()
		WHERE id = $1 AND status = 'pending'
		RETURNING ` + bookingColumns

	var booking models.Booking
	err := nrpkg.WithDatastoreSegment(ctx, "bookings", "UPDATE", func() error {
		return r.db.GetContext(ctx, &booking, query, id, status)
	})
	if errors.Is(err, sql.ErrNoRows) {
		return nil, transitionError(ctx, r.db, id, status)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update booking status: %w", err)
	}
	return &booking, nil
}

// transitionError explains why a conditional status update matched no row
func transitionError(ctx context.Context, q sqlx.QueryerContext, id uuid.UUID, target models.BookingStatus) error {
	var current models.BookingStatus
	err := sqlx.GetContext(ctx, q, &current, `SELECT status FROM bookings WHERE id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return bookingNotFound(id)
	}
	if err != nil {
		return fmt.Errorf("failed to read booking status: %w", err)
	}
	return apperrors.InvalidTransitionError{
		BookingID: id.String(),
		From:      string(current),
		To:        string(target),
	}
}
