package bookings

import (
	"context"

	"github.com/evproyectos/aventados-isw-server/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/evproyectos/aventados-isw-server/services/bookings BookingGW

// BookingGW publishes booking events to the configured broker
type BookingGW interface {
	PublishBookingEvent(ctx context.Context, subject string, event models.BookingEvent) error
}
