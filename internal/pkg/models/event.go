package models

import (
	"time"

	"github.com/google/uuid"
)

// BookingEvent is published on every booking state change
type BookingEvent struct {
	EventType     string        `json:"event_type"`
	BookingID     uuid.UUID     `json:"booking_id"`
	RideID        uuid.UUID     `json:"ride_id"`
	PassengerID   uuid.UUID     `json:"passenger_id"`
	DriverID      uuid.UUID     `json:"driver_id"`
	Status        BookingStatus `json:"status"`
	Origin        string        `json:"origin"`
	Destination   string        `json:"destination"`
	DepartureTime time.Time     `json:"departure_time"`
	OccurredAt    time.Time     `json:"occurred_at"`
}

// NewBookingEvent builds an event from a booking and its ride
func NewBookingEvent(eventType string, booking *Booking, ride *Ride) BookingEvent {
	evt := BookingEvent{
		EventType:   eventType,
		BookingID:   booking.ID,
		RideID:      booking.RideID,
		PassengerID: booking.PassengerID,
		Status:      booking.Status,
		OccurredAt:  time.Now().UTC(),
	}
	if ride != nil {
		evt.DriverID = ride.DriverID
		evt.Origin = ride.Origin
		evt.Destination = ride.Destination
		evt.DepartureTime = ride.DepartureTime
	}
	return evt
}
