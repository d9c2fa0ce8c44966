package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/evproyectos/aventados-isw-server/internal/pkg/logger"
	"github.com/evproyectos/aventados-isw-server/internal/pkg/models"
	nrpkg "github.com/evproyectos/aventados-isw-server/internal/pkg/newrelic"
	ridesrepo "github.com/evproyectos/aventados-isw-server/services/rides/repository"
	"github.com/google/uuid"
)

// ConfirmBooking confirms a pending booking and takes one seat from its ride.
// Both writes share one transaction: the booking row is locked first, then the ride row.
// If either conditional update matches nothing, nothing is written.
// seatsLeft is the ride's capacity as committed by this transaction.
func (r *BookingRepo) ConfirmBooking(ctx context.Context, id uuid.UUID) (booking *models.Booking, seatsLeft int, err error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
		UPDATE bookings SET status = 'confirmed', updated_at = NOW()
		WHERE id = $1 AND status = 'pending'
		RETURNING ` + bookingColumns

	var confirmed models.Booking
	err = nrpkg.WithDatastoreSegment(ctx, "bookings", "UPDATE", func() error {
		return tx.GetContext(ctx, &confirmed, query, id)
	})
	if errors.Is(err, sql.ErrNoRows) {
		return nil, 0, transitionError(ctx, tx, id, models.BookingStatusConfirmed)
	}
	if err != nil {
		return nil, 0, fmt.Errorf("failed to confirm booking: %w", err)
	}

	seatsLeft, err = ridesrepo.DecrementSeat(ctx, tx, confirmed.RideID)
	if err != nil {
		logger.DebugCtx(ctx, "Seat decrement refused, rolling back confirmation",
			logger.String("booking_id", id.String()),
			logger.String("ride_id", confirmed.RideID.String()),
			logger.ErrorField(err))
		return nil, 0, err
	}

	if err := tx.Commit(); err != nil {
		return nil, 0, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return &confirmed, seatsLeft, nil
}
