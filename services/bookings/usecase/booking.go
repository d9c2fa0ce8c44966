package usecase

import (
	"context"
	"strings"

	"github.com/evproyectos/aventados-isw-server/internal/pkg/apperrors"
	"github.com/evproyectos/aventados-isw-server/internal/pkg/constants"
	"github.com/evproyectos/aventados-isw-server/internal/pkg/logger"
	"github.com/evproyectos/aventados-isw-server/internal/pkg/models"
	nrpkg "github.com/evproyectos/aventados-isw-server/internal/pkg/newrelic"
	"github.com/evproyectos/aventados-isw-server/services/bookings"
	"github.com/google/uuid"
)

type bookingUC struct {
	cfg         *models.Config
	allocator   bookings.SeatAllocator
	bookingRepo bookings.BookingRepo
	rideReader  bookings.RideReader
	bookingGW   bookings.BookingGW
	searchCache bookings.SearchInvalidator
}

// NewBookingUC creates the booking workflow. bookingGW may be nil when no broker is configured
// and searchCache may be nil when ride search is not cached.
func NewBookingUC(
	cfg *models.Config,
	allocator bookings.SeatAllocator,
	bookingRepo bookings.BookingRepo,
	rideReader bookings.RideReader,
	bookingGW bookings.BookingGW,
	searchCache bookings.SearchInvalidator,
) (bookings.BookingUC, error) {
	return &bookingUC{
		cfg:         cfg,
		allocator:   allocator,
		bookingRepo: bookingRepo,
		rideReader:  rideReader,
		bookingGW:   bookingGW,
		searchCache: searchCache,
	}, nil
}

func (uc *bookingUC) BookRide(ctx context.Context, principal models.Principal, req models.BookRideRequest) (*models.Booking, error) {
	if !principal.IsClient() {
		return nil, apperrors.NewAuthorization("Only clients can book rides")
	}

	rideID, err := uuid.Parse(strings.TrimSpace(req.RideID))
	if err != nil || rideID == uuid.Nil {
		return nil, apperrors.NewValidation("ride_id", "A valid ride_id is required")
	}
	if req.PassengerID != "" && req.PassengerID != principal.UserID.String() {
		return nil, apperrors.NewAuthorization("You can only book rides for yourself")
	}

	var ride *models.Ride
	booking, err := nrpkg.WithSegmentAndReturn(ctx, "SeatAllocator.Reserve", func() (*models.Booking, error) {
		b, r, err := uc.allocator.Reserve(ctx, principal, rideID)
		ride = r
		return b, err
	})
	if err != nil {
		return nil, err
	}
	if ride != nil {
		booking.Ride = ride.Summary()
	}

	logger.InfoCtx(ctx, "Booking requested",
		logger.String("booking_id", booking.ID.String()),
		logger.String("ride_id", booking.RideID.String()),
		logger.String("passenger_id", booking.PassengerID.String()))

	uc.publish(ctx, constants.SubjectBookingRequested, booking, ride)
	return booking, nil
}

func (uc *bookingUC) UpdateBookingStatus(ctx context.Context, principal models.Principal, bookingID uuid.UUID, action string) (*models.Booking, error) {
	act := models.BookingAction(strings.ToLower(strings.TrimSpace(action)))

	var ride *models.Ride
	booking, err := nrpkg.WithSegmentAndReturn(ctx, "SeatAllocator.Transition", func() (*models.Booking, error) {
		b, r, err := uc.allocator.Transition(ctx, principal, bookingID, act)
		ride = r
		return b, err
	})
	if err != nil {
		return nil, err
	}
	if ride != nil {
		booking.Ride = ride.Summary()
	}

	subject := constants.SubjectBookingCancelled
	if booking.Status == models.BookingStatusConfirmed {
		subject = constants.SubjectBookingConfirmed
		// the accept took a seat, so cached searches now overstate availability
		uc.invalidateSearch(ctx)
	}
	uc.publish(ctx, subject, booking, ride)
	return booking, nil
}

func (uc *bookingUC) ListByRide(ctx context.Context, principal models.Principal, rideID uuid.UUID) ([]*models.Booking, error) {
	ride, err := uc.rideReader.GetRide(ctx, rideID)
	if err != nil {
		return nil, err
	}
	if !principal.IsDriver() || principal.UserID != ride.DriverID {
		return nil, apperrors.NewAuthorization("You can only view bookings for your own rides")
	}

	list, err := uc.bookingRepo.FindByRide(ctx, rideID)
	if err != nil {
		return nil, err
	}
	if len(list) == 0 && uc.cfg.Bookings.EmptyAsNotFound {
		return nil, apperrors.NotFoundError{Resource: "booking", Msg: "No bookings found for this ride"}
	}
	return list, nil
}

func (uc *bookingUC) ListByDriver(ctx context.Context, principal models.Principal, driverID uuid.UUID) ([]*models.Booking, error) {
	if !principal.IsDriver() || principal.UserID != driverID {
		return nil, apperrors.NewAuthorization("You can only view bookings for your own rides")
	}

	list, hasRides, err := uc.bookingRepo.FindByDriver(ctx, driverID)
	if err != nil {
		return nil, err
	}
	if uc.cfg.Bookings.EmptyAsNotFound {
		if !hasRides {
			return nil, apperrors.NotFoundError{Resource: "ride", Msg: "No rides found for this driver"}
		}
		if len(list) == 0 {
			return nil, apperrors.NotFoundError{Resource: "booking", Msg: "No bookings found for this driver"}
		}
	}
	return list, nil
}

func (uc *bookingUC) ListByPassenger(ctx context.Context, principal models.Principal, passengerID uuid.UUID) ([]*models.Booking, error) {
	if principal.UserID != passengerID {
		return nil, apperrors.NewAuthorization("You can only view your own bookings")
	}

	list, err := uc.bookingRepo.FindByPassenger(ctx, passengerID)
	if err != nil {
		return nil, err
	}
	if len(list) == 0 && uc.cfg.Bookings.EmptyAsNotFound {
		return nil, apperrors.NotFoundError{Resource: "booking", Msg: "No bookings found for this passenger"}
	}
	return list, nil
}

func (uc *bookingUC) invalidateSearch(ctx context.Context) {
	if uc.searchCache == nil {
		return
	}
	if err := uc.searchCache.Invalidate(ctx); err != nil {
		logger.WarnCtx(ctx, "Failed to invalidate ride search cache", logger.ErrorField(err))
	}
}

// publish runs after the write has committed, so a broker failure is only logged
func (uc *bookingUC) publish(ctx context.Context, subject string, booking *models.Booking, ride *models.Ride) {
	if uc.bookingGW == nil {
		return
	}
	event := models.NewBookingEvent(subject, booking, ride)
	if err := uc.bookingGW.PublishBookingEvent(ctx, subject, event); err != nil {
		logger.ErrorCtx(ctx, "Failed to publish booking event",
			logger.String("subject", subject),
			logger.String("booking_id", booking.ID.String()),
			logger.ErrorField(err))
	}
}
