package usecase

import (
	"context"

	"github.com/evproyectos/aventados-isw-server/internal/pkg/apperrors"
	"github.com/evproyectos/aventados-isw-server/internal/pkg/logger"
	"github.com/evproyectos/aventados-isw-server/internal/pkg/models"
	"github.com/evproyectos/aventados-isw-server/services/bookings"
	"github.com/google/uuid"
)

type seatAllocator struct {
	bookingRepo bookings.BookingRepo
	rideReader  bookings.RideReader
}

// NewSeatAllocator creates the engine that owns every seat decision
func NewSeatAllocator(
	bookingRepo bookings.BookingRepo,
	rideReader bookings.RideReader,
) bookings.SeatAllocator {
	return &seatAllocator{
		bookingRepo: bookingRepo,
		rideReader:  rideReader,
	}
}

// Reserve records a pending booking for the calling client. No seat is taken yet;
// the seat check only refuses requests for rides that are already full.
func (s *seatAllocator) Reserve(ctx context.Context, principal models.Principal, rideID uuid.UUID) (*models.Booking, *models.Ride, error) {
	if !principal.IsClient() {
		return nil, nil, apperrors.NewAuthorization("Only clients can book rides")
	}

	ride, err := s.rideReader.GetRide(ctx, rideID)
	if err != nil {
		return nil, nil, err
	}
	if ride.AvailableSeats <= 0 {
		return nil, nil, apperrors.CapacityError{RideID: ride.ID.String()}
	}

	booking, err := s.bookingRepo.Create(ctx, &models.Booking{
		RideID:      ride.ID,
		PassengerID: principal.UserID,
	})
	if err != nil {
		return nil, nil, err
	}
	return booking, ride, nil
}

// Transition applies the ride owner's decision to a pending booking
func (s *seatAllocator) Transition(ctx context.Context, principal models.Principal, bookingID uuid.UUID, action models.BookingAction) (*models.Booking, *models.Ride, error) {
	if !action.Valid() {
		return nil, nil, apperrors.NewValidation("action", `Invalid action. Use "accept" or "reject".`)
	}

	booking, err := s.bookingRepo.GetBooking(ctx, bookingID)
	if err != nil {
		return nil, nil, err
	}
	ride, err := s.rideReader.GetRide(ctx, booking.RideID)
	if err != nil {
		return nil, nil, err
	}

	if principal.UserID != ride.DriverID {
		return nil, nil, apperrors.NewAuthorization("You can only manage bookings for your own rides")
	}

	target := action.TargetStatus()
	if booking.Status.IsTerminal() {
		return nil, nil, apperrors.InvalidTransitionError{
			BookingID: booking.ID.String(),
			From:      string(booking.Status),
			To:        string(target),
		}
	}

	var updated *models.Booking
	switch action {
	case models.BookingActionAccept:
		// the store re-checks both conditions inside its transaction
		var seatsLeft int
		updated, seatsLeft, err = s.bookingRepo.ConfirmBooking(ctx, booking.ID)
		if err == nil {
			ride.AvailableSeats = seatsLeft
		}
	default:
		updated, err = s.bookingRepo.SetStatus(ctx, booking.ID, target)
	}
	if err != nil {
		return nil, nil, err
	}

	logger.InfoCtx(ctx, "Booking transitioned",
		logger.String("booking_id", updated.ID.String()),
		logger.String("ride_id", ride.ID.String()),
		logger.String("status", string(updated.Status)))
	return updated, ride, nil
}
