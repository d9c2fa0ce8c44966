// Package apperrors holds the typed errors shared by the ride and booking services.
package apperrors

import (
	"errors"
	"fmt"
)

// ValidationError reports malformed input.
type ValidationError struct {
	Field string
	Msg   string
	Err   error
}

func (e ValidationError) Error() string {
	switch {
	case e.Msg != "":
		return e.Msg
	case e.Field != "":
		return fmt.Sprintf("invalid %s", e.Field)
	default:
		return "validation error"
	}
}

func (e ValidationError) Unwrap() error { return e.Err }

// AuthorizationError reports a role or ownership mismatch.
type AuthorizationError struct {
	Msg string
}

func (e AuthorizationError) Error() string {
	if e.Msg == "" {
		return "forbidden"
	}
	return e.Msg
}

// NotFoundError reports a missing record or an empty collection.
type NotFoundError struct {
	Resource string
	ID       string
	Msg      string
	Err      error
}

func (e NotFoundError) Error() string {
	switch {
	case e.Msg != "":
		return e.Msg
	case e.Resource != "" && e.ID != "":
		return fmt.Sprintf("%s %s not found", e.Resource, e.ID)
	case e.Resource != "":
		return fmt.Sprintf("%s not found", e.Resource)
	default:
		return "not found"
	}
}

func (e NotFoundError) Unwrap() error { return e.Err }

// CapacityError reports that a ride has no seat left.
type CapacityError struct {
	RideID string
}

func (e CapacityError) Error() string {
	return "No available seats"
}

// InvalidTransitionError reports a status change on a terminal booking.
type InvalidTransitionError struct {
	BookingID string
	From      string
	To        string
}

func (e InvalidTransitionError) Error() string {
	if e.From == "" {
		return fmt.Sprintf("booking %s is no longer pending", e.BookingID)
	}
	return fmt.Sprintf("booking is already %s and cannot be %s", e.From, e.To)
}

func NewValidation(field, msg string) error {
	return ValidationError{Field: field, Msg: msg}
}

func NewAuthorization(msg string) error {
	return AuthorizationError{Msg: msg}
}

func NewNotFound(resource, id string) error {
	return NotFoundError{Resource: resource, ID: id}
}

func IsValidation(err error) bool {
	var target ValidationError
	return errors.As(err, &target)
}

func IsAuthorization(err error) bool {
	var target AuthorizationError
	return errors.As(err, &target)
}

func IsNotFound(err error) bool {
	var target NotFoundError
	return errors.As(err, &target)
}

func IsCapacity(err error) bool {
	var target CapacityError
	return errors.As(err, &target)
}

func IsInvalidTransition(err error) bool {
	var target InvalidTransitionError
	return errors.As(err, &target)
}

// IsDomain reports whether err is one of the typed errors above.
func IsDomain(err error) bool {
	return IsValidation(err) || IsAuthorization(err) || IsNotFound(err) ||
		IsCapacity(err) || IsInvalidTransition(err)
}
