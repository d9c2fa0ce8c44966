package handler

import (
	"context"
	"encoding/json"

	"github.com/evproyectos/aventados-isw-server/internal/pkg/logger"
	"github.com/evproyectos/aventados-isw-server/internal/pkg/models"
	"github.com/evproyectos/aventados-isw-server/services/notifications"
	"github.com/nats-io/nats.go/jetstream"
	"github.com/newrelic/go-agent/v3/newrelic"
)

// EventHandler feeds booking events from any broker into the notifier
type EventHandler struct {
	notifierUC notifications.NotifierUC
	nrApp      *newrelic.Application
}

// NewEventHandler creates a new booking event handler. nrApp may be nil.
func NewEventHandler(notifierUC notifications.NotifierUC, nrApp *newrelic.Application) *EventHandler {
	return &EventHandler{
		notifierUC: notifierUC,
		nrApp:      nrApp,
	}
}

// HandleJetStream processes a JetStream message; an error naks it for redelivery
func (h *EventHandler) HandleJetStream(msg jetstream.Msg) error {
	return h.handle(msg.Subject(), msg.Data())
}

// HandleNSQ processes the payload of an NSQ envelope
func (h *EventHandler) HandleNSQ(subject string, payload []byte) error {
	return h.handle(subject, payload)
}

// HandleRabbitMQ processes a delivery routed by subject
func (h *EventHandler) HandleRabbitMQ(subject string, body []byte) error {
	return h.handle(subject, body)
}

func (h *EventHandler) handle(subject string, data []byte) error {
	txn := h.nrApp.StartTransaction("Notifier." + subject)
	defer txn.End()
	ctx := newrelic.NewContext(context.Background(), txn)

	var event models.BookingEvent
	if err := json.Unmarshal(data, &event); err != nil {
		// redelivery cannot fix a malformed payload
		logger.ErrorCtx(ctx, "Dropping malformed booking event",
			logger.String("subject", subject),
			logger.ErrorField(err))
		return nil
	}
	if event.EventType == "" {
		event.EventType = subject
	}

	logger.DebugCtx(ctx, "Received booking event",
		logger.String("subject", subject),
		logger.String("booking_id", event.BookingID.String()))

	if err := h.notifierUC.HandleBookingEvent(ctx, event); err != nil {
		txn.NoticeError(err)
		logger.ErrorCtx(ctx, "Failed to handle booking event",
			logger.String("subject", subject),
			logger.String("booking_id", event.BookingID.String()),
			logger.ErrorField(err))
		return err
	}
	return nil
}
