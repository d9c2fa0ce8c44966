package usecase

import (
	"context"
	"fmt"

	"github.com/evproyectos/aventados-isw-server/internal/pkg/apperrors"
	"github.com/evproyectos/aventados-isw-server/internal/pkg/constants"
	"github.com/evproyectos/aventados-isw-server/internal/pkg/logger"
	"github.com/evproyectos/aventados-isw-server/internal/pkg/models"
	nrpkg "github.com/evproyectos/aventados-isw-server/internal/pkg/newrelic"
	"github.com/evproyectos/aventados-isw-server/internal/pkg/sms"
	"github.com/evproyectos/aventados-isw-server/internal/utils"
	"github.com/evproyectos/aventados-isw-server/services/notifications"
	"github.com/google/uuid"
)

const departureLayout = "02/01/2006 15:04"

type notifierUC struct {
	cfg      *models.Config
	contacts notifications.ContactRepo
	sender   sms.Sender
}

// NewNotifierUC creates the use case that texts drivers and passengers about their bookings
func NewNotifierUC(
	cfg *models.Config,
	contacts notifications.ContactRepo,
	sender sms.Sender,
) (notifications.NotifierUC, error) {
	return &notifierUC{
		cfg:      cfg,
		contacts: contacts,
		sender:   sender,
	}, nil
}

// HandleBookingEvent texts the driver about new requests and the passenger about decisions.
// Events that cannot produce a message are dropped; only delivery failures are returned.
func (uc *notifierUC) HandleBookingEvent(ctx context.Context, event models.BookingEvent) error {
	var (
		recipient uuid.UUID
		body      string
	)
	route := fmt.Sprintf("%s to %s (%s)", event.Origin, event.Destination, event.DepartureTime.Format(departureLayout))

	switch event.EventType {
	case constants.SubjectBookingRequested:
		recipient = event.DriverID
		body = fmt.Sprintf("Aventados: you have a new booking request for your ride %s.", route)
	case constants.SubjectBookingConfirmed:
		recipient = event.PassengerID
		body = fmt.Sprintf("Aventados: your booking for the ride %s was accepted.", route)
	case constants.SubjectBookingCancelled:
		recipient = event.PassengerID
		body = fmt.Sprintf("Aventados: your booking for the ride %s was rejected.", route)
	default:
		logger.DebugCtx(ctx, "Ignoring booking event", logger.String("event_type", event.EventType))
		return nil
	}

	if recipient == uuid.Nil {
		logger.WarnCtx(ctx, "Booking event without recipient",
			logger.String("event_type", event.EventType),
			logger.String("booking_id", event.BookingID.String()))
		return nil
	}

	contact, err := uc.contacts.GetContact(ctx, recipient)
	if apperrors.IsNotFound(err) {
		logger.WarnCtx(ctx, "Notification recipient not found", logger.String("user_id", recipient.String()))
		return nil
	}
	if err != nil {
		return err
	}

	to, err := utils.NormalizePhoneNumber(contact.PhoneNumber, uc.cfg.SMS.DefaultCountryCode)
	if err != nil {
		logger.WarnCtx(ctx, "Recipient has no usable phone number",
			logger.String("user_id", recipient.String()),
			logger.ErrorField(err))
		return nil
	}

	id, err := nrpkg.WithSegmentAndReturn(ctx, "SMS.Send", func() (string, error) {
		return uc.sender.Send(ctx, sms.Message{To: to, Body: body})
	})
	if err != nil {
		return fmt.Errorf("failed to send %s notification: %w", event.EventType, err)
	}

	logger.InfoCtx(ctx, "Booking notification sent",
		logger.String("event_type", event.EventType),
		logger.String("booking_id", event.BookingID.String()),
		logger.String("user_id", recipient.String()),
		logger.String("message_id", id))
	return nil
}
