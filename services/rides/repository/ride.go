package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/evproyectos/aventados-isw-server/internal/pkg/apperrors"
	"github.com/evproyectos/aventados-isw-server/internal/pkg/logger"
	"github.com/evproyectos/aventados-isw-server/internal/pkg/models"
	nrpkg "github.com/evproyectos/aventados-isw-server/internal/pkg/newrelic"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

const rideColumns = `id, driver_id, origin, destination, departure_time, available_seats, fee, created_at, updated_at`

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

type RideRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

func NewRideRepository(
	cfg *models.Config,
	db *sqlx.DB,
) *RideRepo {
	logger.Debug("Initializing ride repository")
	return &RideRepo{
		cfg: cfg,
		db:  db,
	}
}

func rideNotFound(id uuid.UUID) error {
	return apperrors.NotFoundError{Resource: "ride", ID: id.String(), Msg: "Ride not found"}
}

func validateRide(ride *models.Ride) error {
	switch {
	case ride.DriverID == uuid.Nil:
		return apperrors.NewValidation("driver_id", "driver_id is required")
	case strings.TrimSpace(ride.Origin) == "":
		return apperrors.NewValidation("origin", "origin is required")
	case strings.TrimSpace(ride.Destination) == "":
		return apperrors.NewValidation("destination", "destination is required")
	case ride.DepartureTime.IsZero():
		return apperrors.NewValidation("departure_time", "departure_time is required")
	case ride.AvailableSeats < 0:
		return apperrors.NewValidation("available_seats", "available_seats cannot be negative")
	case ride.Fee < 0:
		return apperrors.NewValidation("fee", "fee cannot be negative")
	}
	return nil
}

// Create inserts a new ride
func (r *RideRepo) Create(ctx context.Context, ride *models.Ride) (*models.Ride, error) {
	if err := validateRide(ride); err != nil {
		return nil, err
	}

	if ride.ID == uuid.Nil {
		ride.ID = uuid.New()
	}
	now := time.Now().UTC()
	ride.CreatedAt = now
	ride.UpdatedAt = now

	query := `
		INSERT INTO rides (` + rideColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	err := nrpkg.WithDatastoreSegment(ctx, "rides", "INSERT", func() error {
		_, err := r.db.ExecContext(ctx, query,
			ride.ID,
			ride.DriverID,
			ride.Origin,
			ride.Destination,
			ride.DepartureTime,
			ride.AvailableSeats,
			ride.Fee,
			ride.CreatedAt,
			ride.UpdatedAt,
		)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create ride: %w", err)
	}

	return ride, nil
}

// GetRide returns a ride with the passengers of its confirmed bookings
func (r *RideRepo) GetRide(ctx context.Context, id uuid.UUID) (*models.Ride, error) {
	var ride models.Ride
	err := nrpkg.WithDatastoreSegment(ctx, "rides", "SELECT", func() error {
		return r.db.GetContext(ctx, &ride, `SELECT `+rideColumns+` FROM rides WHERE id = $1`, id)
	})
	if errors.Is(err, sql.ErrNoRows) {
		return nil, rideNotFound(id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get ride: %w", err)
	}

	passengers := []uuid.UUID{}
	query := `
		SELECT passenger_id FROM bookings
		WHERE ride_id = $1 AND status = 'confirmed'
		ORDER BY updated_at, booked_at
	`
	if err := r.db.SelectContext(ctx, &passengers, query, id); err != nil {
		return nil, fmt.Errorf("failed to get ride passengers: %w", err)
	}
	ride.Passengers = passengers

	return &ride, nil
}

// ListRides returns every ride ordered by departure time
func (r *RideRepo) ListRides(ctx context.Context) ([]*models.Ride, error) {
	rides := []*models.Ride{}
	query := `SELECT ` + rideColumns + ` FROM rides ORDER BY departure_time`
	if err := r.db.SelectContext(ctx, &rides, query); err != nil {
		return nil, fmt.Errorf("failed to list rides: %w", err)
	}
	return rides, nil
}

// ListByDriver returns the rides published by a driver
func (r *RideRepo) ListByDriver(ctx context.Context, driverID uuid.UUID) ([]*models.Ride, error) {
	rides := []*models.Ride{}
	query := `SELECT ` + rideColumns + ` FROM rides WHERE driver_id = $1 ORDER BY departure_time`
	if err := r.db.SelectContext(ctx, &rides, query, driverID); err != nil {
		return nil, fmt.Errorf("failed to list rides by driver: %w", err)
	}
	return rides, nil
}

// SearchByDestination matches destination as a case-insensitive substring
func (r *RideRepo) SearchByDestination(ctx context.Context, destination string) ([]*models.Ride, error) {
	destination = strings.TrimSpace(destination)
	if destination == "" {
		return r.ListRides(ctx)
	}

	rides := []*models.Ride{}
	query := `SELECT ` + rideColumns + ` FROM rides WHERE destination ILIKE $1 ESCAPE '\' ORDER BY departure_time`
	pattern := "%" + likeEscaper.Replace(destination) + "%"
	if err := r.db.SelectContext(ctx, &rides, query, pattern); err != nil {
		return nil, fmt.Errorf("failed to search rides: %w", err)
	}
	return rides, nil
}

// DecrementSeat takes one seat outside of any booking transaction
func (r *RideRepo) DecrementSeat(ctx context.Context, id uuid.UUID) error {
	_, err := DecrementSeat(ctx, r.db, id)
	return err
}

// DecrementSeat takes one seat from a ride with a single conditional update and
// returns the seats left as written by that update.
// q may be a transaction; the row lock it takes is held until that transaction ends.
// No returned row means the ride is either missing or full.
func DecrementSeat(ctx context.Context, q sqlx.ExtContext, rideID uuid.UUID) (int, error) {
	query := `
		UPDATE rides
		SET available_seats = available_seats - 1, updated_at = NOW()
		WHERE id = $1 AND available_seats > 0
		RETURNING available_seats
	`
	var remaining int
	err := nrpkg.WithDatastoreSegment(ctx, "rides", "UPDATE", func() error {
		return sqlx.GetContext(ctx, q, &remaining, query, rideID)
	})
	if err == nil {
		return remaining, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return 0, fmt.Errorf("failed to decrement seat: %w", err)
	}

	exists, err := rideExists(ctx, q, rideID)
	if err != nil {
		return 0, err
	}
	if !exists {
		return 0, rideNotFound(rideID)
	}
	return 0, apperrors.CapacityError{RideID: rideID.String()}
}

func rideExists(ctx context.Context, q sqlx.QueryerContext, rideID uuid.UUID) (bool, error) {
	var exists bool
	if err := sqlx.GetContext(ctx, q, &exists, `SELECT EXISTS(SELECT 1 FROM rides WHERE id = $1)`, rideID); err != nil {
		return false, fmt.Errorf("failed to check ride: %w", err)
	}
	return exists, nil
}

// IncrementSeat gives a seat back. There is no upper bound since the initial capacity is not stored.
func (r *RideRepo) IncrementSeat(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE rides SET available_seats = available_seats + 1, updated_at = NOW() WHERE id = $1`
	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to increment seat: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return rideNotFound(id)
	}
	return nil
}

func validateRideUpdate(update models.RideUpdate) error {
	if update.IsEmpty() {
		return apperrors.NewValidation("", "No fields to update")
	}
	if update.Origin != nil && strings.TrimSpace(*update.Origin) == "" {
		return apperrors.NewValidation("origin", "origin cannot be empty")
	}
	if update.Destination != nil && strings.TrimSpace(*update.Destination) == "" {
		return apperrors.NewValidation("destination", "destination cannot be empty")
	}
	if update.DepartureTime != nil && update.DepartureTime.IsZero() {
		return apperrors.NewValidation("departure_time", "departure_time cannot be empty")
	}
	if update.AvailableSeats != nil && *update.AvailableSeats < 0 {
		return apperrors.NewValidation("available_seats", "available_seats cannot be negative")
	}
	if update.Fee != nil && *update.Fee < 0 {
		return apperrors.NewValidation("fee", "fee cannot be negative")
	}
	return nil
}

// lockOwner locks the ride row and checks that driverID owns it
func lockOwner(ctx context.Context, tx *sqlx.Tx, id, driverID uuid.UUID, denied string) error {
	var owner uuid.UUID
	err := tx.GetContext(ctx, &owner, `SELECT driver_id FROM rides WHERE id = $1 FOR UPDATE`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return rideNotFound(id)
	}
	if err != nil {
		return fmt.Errorf("failed to lock ride: %w", err)
	}
	if owner != driverID {
		return apperrors.NewAuthorization(denied)
	}
	return nil
}

// Update applies the non-nil fields of update to a ride owned by driverID
func (r *RideRepo) Update(ctx context.Context, id, driverID uuid.UUID, update models.RideUpdate) (*models.Ride, error) {
	if err := validateRideUpdate(update); err != nil {
		return nil, err
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := lockOwner(ctx, tx, id, driverID, "You can only update your own rides"); err != nil {
		return nil, err
	}

	sets := make([]string, 0, 6)
	args := make([]interface{}, 0, 6)
	add := func(column string, value interface{}) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}
	if update.Origin != nil {
		add("origin", *update.Origin)
	}
	if update.Destination != nil {
		add("destination", *update.Destination)
	}
	if update.DepartureTime != nil {
		add("departure_time", *update.DepartureTime)
	}
	if update.AvailableSeats != nil {
		add("available_seats", *update.AvailableSeats)
	}
	if update.Fee != nil {
		add("fee", *update.Fee)
	}
	sets = append(sets, "updated_at = NOW()")
	args = append(args, id)

	query := fmt.Sprintf(`UPDATE rides SET %s WHERE id = $%d RETURNING %s`,
		strings.Join(sets, ", "), len(args), rideColumns)

	var ride models.Ride
	if err := tx.GetContext(ctx, &ride, query, args...); err != nil {
		return nil, fmt.Errorf("failed to update ride: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return &ride, nil
}

// Delete removes a ride owned by driverID; its bookings go with it
func (r *RideRepo) Delete(ctx context.Context, id, driverID uuid.UUID) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	// booking rows before the ride row, the same order ConfirmBooking takes them;
	// the cascade below would otherwise lock them after the ride
	if _, err := tx.ExecContext(ctx, `SELECT id FROM bookings WHERE ride_id = $1 FOR UPDATE`, id); err != nil {
		return fmt.Errorf("failed to lock ride bookings: %w", err)
	}

	if err := lockOwner(ctx, tx, id, driverID, "You can only delete your own rides"); err != nil {
		return err
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM rides WHERE id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete ride: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}
