package models

import (
	"time"

	"github.com/google/uuid"
)

// BookingStatus represents the lifecycle state of a booking
type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

// IsTerminal reports whether no further transition is allowed
func (s BookingStatus) IsTerminal() bool {
	return s == BookingStatusConfirmed || s == BookingStatusCancelled
}

// PaymentStatus is stored alongside a booking; settlement is handled elsewhere
type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusPaid     PaymentStatus = "paid"
	PaymentStatusRefunded PaymentStatus = "refunded"
)

// BookingAction is the driver decision on a pending booking
type BookingAction string

const (
	BookingActionAccept BookingAction = "accept"
	BookingActionReject BookingAction = "reject"
)

// Valid reports whether the action is one of accept or reject
func (a BookingAction) Valid() bool {
	return a == BookingActionAccept || a == BookingActionReject
}

// TargetStatus returns the status a pending booking moves to for this action
func (a BookingAction) TargetStatus() BookingStatus {
	if a == BookingActionAccept {
		return BookingStatusConfirmed
	}
	return BookingStatusCancelled
}

// Booking represents a client's claim against a ride's capacity
type Booking struct {
	ID            uuid.UUID     `json:"id" db:"id"`
	RideID        uuid.UUID     `json:"ride_id" db:"ride_id"`
	PassengerID   uuid.UUID     `json:"passenger_id" db:"passenger_id"`
	Status        BookingStatus `json:"status" db:"status"`
	PaymentStatus PaymentStatus `json:"payment_status" db:"payment_status"`
	BookedAt      time.Time     `json:"booked_at" db:"booked_at"`
	UpdatedAt     time.Time     `json:"updated_at" db:"updated_at"`

	Ride      *RideSummary `json:"ride,omitempty" db:"-"`
	Passenger *UserProfile `json:"passenger,omitempty" db:"-"`
}

// BookRideRequest is the payload for requesting a seat
type BookRideRequest struct {
	RideID      string `json:"ride_id"`
	PassengerID string `json:"passenger_id,omitempty"`
}

// UpdateBookingStatusRequest is the payload for accepting or rejecting a booking
type UpdateBookingStatusRequest struct {
	Action string `json:"action"`
}
