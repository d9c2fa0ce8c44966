package bookings

import (
	"context"

	"github.com/evproyectos/aventados-isw-server/internal/pkg/models"
	"github.com/google/uuid"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/evproyectos/aventados-isw-server/services/bookings SeatAllocator,BookingUC,SearchInvalidator

// SeatAllocator decides every change to a ride's capacity
type SeatAllocator interface {
	Reserve(ctx context.Context, principal models.Principal, rideID uuid.UUID) (*models.Booking, *models.Ride, error)
	Transition(ctx context.Context, principal models.Principal, bookingID uuid.UUID, action models.BookingAction) (*models.Booking, *models.Ride, error)
}

// BookingUC defines the interface for the booking workflow
type BookingUC interface {
	BookRide(ctx context.Context, principal models.Principal, req models.BookRideRequest) (*models.Booking, error)
	UpdateBookingStatus(ctx context.Context, principal models.Principal, bookingID uuid.UUID, action string) (*models.Booking, error)
	ListByRide(ctx context.Context, principal models.Principal, rideID uuid.UUID) ([]*models.Booking, error)
	ListByDriver(ctx context.Context, principal models.Principal, driverID uuid.UUID) ([]*models.Booking, error)
	ListByPassenger(ctx context.Context, principal models.Principal, passengerID uuid.UUID) ([]*models.Booking, error)
}

// SearchInvalidator drops cached ride search results once a ride's seat count changes
type SearchInvalidator interface {
	Invalidate(ctx context.Context) error
}
