package models

import (
	"time"

	"github.com/google/uuid"
)

// Ride represents a scheduled trip offered by a driver
type Ride struct {
	ID             uuid.UUID `json:"id" db:"id"`
	DriverID       uuid.UUID `json:"driver_id" db:"driver_id"`
	Origin         string    `json:"origin" db:"origin"`
	Destination    string    `json:"destination" db:"destination"`
	DepartureTime  time.Time `json:"departure_time" db:"departure_time"`
	AvailableSeats int       `json:"available_seats" db:"available_seats"`
	Fee            float64   `json:"fee" db:"fee"`
	CreatedAt      time.Time `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time `json:"updated_at" db:"updated_at"`

	// Passengers holds the passengers of confirmed bookings, in confirmation order.
	Passengers []uuid.UUID `json:"passengers,omitempty" db:"-"`
}

// CreateRideRequest is the payload for publishing a ride
type CreateRideRequest struct {
	Origin         string    `json:"origin"`
	Destination    string    `json:"destination"`
	DepartureTime  time.Time `json:"departure_time"`
	AvailableSeats int       `json:"available_seats"`
	Fee            float64   `json:"fee"`
}

// RideUpdate carries the editable fields of a ride; nil fields are left untouched
type RideUpdate struct {
	Origin         *string    `json:"origin,omitempty"`
	Destination    *string    `json:"destination,omitempty"`
	DepartureTime  *time.Time `json:"departure_time,omitempty"`
	AvailableSeats *int       `json:"available_seats,omitempty"`
	Fee            *float64   `json:"fee,omitempty"`
}

// IsEmpty reports whether the update carries no field at all
func (u RideUpdate) IsEmpty() bool {
	return u.Origin == nil && u.Destination == nil && u.DepartureTime == nil &&
		u.AvailableSeats == nil && u.Fee == nil
}

// RideSummary is the ride projection attached to bookings
type RideSummary struct {
	ID             uuid.UUID `json:"id"`
	DriverID       uuid.UUID `json:"driver_id"`
	Origin         string    `json:"origin"`
	Destination    string    `json:"destination"`
	DepartureTime  time.Time `json:"departure_time"`
	AvailableSeats int       `json:"available_seats"`
	Fee            float64   `json:"fee"`
}

// Summary returns the projection attached to bookings
func (r *Ride) Summary() *RideSummary {
	return &RideSummary{
		ID:             r.ID,
		DriverID:       r.DriverID,
		Origin:         r.Origin,
		Destination:    r.Destination,
		DepartureTime:  r.DepartureTime,
		AvailableSeats: r.AvailableSeats,
		Fee:            r.Fee,
	}
}
