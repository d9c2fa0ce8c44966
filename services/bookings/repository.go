package bookings

import (
	"context"

	"github.com/evproyectos/aventados-isw-server/internal/pkg/models"
	"github.com/google/uuid"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/evproyectos/aventados-isw-server/services/bookings BookingRepo,RideReader

// BookingRepo defines the interface for booking data access operations
type BookingRepo interface {
	Create(ctx context.Context, booking *models.Booking) (*models.Booking, error)
	GetBooking(ctx context.Context, id uuid.UUID) (*models.Booking, error)
	FindByRide(ctx context.Context, rideID uuid.UUID) ([]*models.Booking, error)
	// FindByDriver reports hasRides=false when the driver has published no ride at all.
	FindByDriver(ctx context.Context, driverID uuid.UUID) (bookings []*models.Booking, hasRides bool, err error)
	FindByPassenger(ctx context.Context, passengerID uuid.UUID) ([]*models.Booking, error)
	// SetStatus moves a pending booking to status without touching the ride.
	SetStatus(ctx context.Context, id uuid.UUID, status models.BookingStatus) (*models.Booking, error)
	// ConfirmBooking confirms a pending booking and takes one seat from its ride in one transaction.
	// seatsLeft is the ride capacity written by that transaction.
	ConfirmBooking(ctx context.Context, id uuid.UUID) (booking *models.Booking, seatsLeft int, err error)
}

// RideReader is the part of the ride store the booking service reads
type RideReader interface {
	GetRide(ctx context.Context, id uuid.UUID) (*models.Ride, error)
}
