package gateway

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/evproyectos/aventados-isw-server/internal/pkg/logger"
	"github.com/evproyectos/aventados-isw-server/internal/pkg/models"
	nrpkg "github.com/evproyectos/aventados-isw-server/internal/pkg/newrelic"
	"github.com/evproyectos/aventados-isw-server/services/bookings"
)

// Publisher is implemented by the NATS, NSQ and RabbitMQ clients
type Publisher interface {
	Publish(subject string, data []byte) error
}

// bookingGW handles booking event publishing
type bookingGW struct {
	publisher Publisher
	broker    string
}

// NewBookingGW creates a gateway publishing through the given broker client
func NewBookingGW(publisher Publisher, broker string) bookings.BookingGW {
	return &bookingGW{
		publisher: publisher,
		broker:    broker,
	}
}

// PublishBookingEvent publishes a booking state change under subject
func (g *bookingGW) PublishBookingEvent(ctx context.Context, subject string, event models.BookingEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal booking event: %w", err)
	}

	err = nrpkg.WithSegment(ctx, "Publish "+subject, func() error {
		return g.publisher.Publish(subject, data)
	})
	if err != nil {
		return fmt.Errorf("failed to publish %s via %s: %w", subject, g.broker, err)
	}

	logger.DebugCtx(ctx, "Published booking event",
		logger.String("subject", subject),
		logger.String("broker", g.broker),
		logger.String("booking_id", event.BookingID.String()))
	return nil
}
