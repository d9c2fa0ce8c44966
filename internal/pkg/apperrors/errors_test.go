package apperrors

import (
	"database/sql"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorMessages(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{"validation with message", ValidationError{Field: "action", Msg: `Invalid action. Use "accept" or "reject".`}, `Invalid action. Use "accept" or "reject".`},
		{"validation with field only", ValidationError{Field: "ride_id"}, "invalid ride_id"},
		{"validation empty", ValidationError{}, "validation error"},
		{"authorization default", AuthorizationError{}, "forbidden"},
		{"authorization message", AuthorizationError{Msg: "You can only update your own rides"}, "You can only update your own rides"},
		{"not found resource and id", NotFoundError{Resource: "ride", ID: "r1"}, "ride r1 not found"},
		{"not found custom message", NotFoundError{Msg: "No bookings found for this ride"}, "No bookings found for this ride"},
		{"capacity", CapacityError{RideID: "r1"}, "No available seats"},
		{"transition", InvalidTransitionError{BookingID: "b1", From: "confirmed", To: "cancelled"}, "booking is already confirmed and cannot be cancelled"},
		{"transition unknown source", InvalidTransitionError{BookingID: "b1"}, "booking b1 is no longer pending"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.err.Error())
		})
	}
}

func TestIsHelpers_ThroughWrapping(t *testing.T) {
	wrapped := fmt.Errorf("reserve seat: %w", CapacityError{RideID: "r1"})

	assert.True(t, IsCapacity(wrapped))
	assert.True(t, IsDomain(wrapped))
	assert.False(t, IsNotFound(wrapped))
	assert.False(t, IsValidation(wrapped))
}

func TestNotFound_UnwrapsCause(t *testing.T) {
	err := NotFoundError{Resource: "booking", ID: "b1", Err: sql.ErrNoRows}

	assert.ErrorIs(t, err, sql.ErrNoRows)
	assert.True(t, IsNotFound(err))
}

func TestIsDomain_InfrastructureError(t *testing.T) {
	assert.False(t, IsDomain(sql.ErrConnDone))
	assert.False(t, IsDomain(nil))
}

func TestConstructors(t *testing.T) {
	assert.True(t, IsValidation(NewValidation("fee", "fee must not be negative")))
	assert.True(t, IsAuthorization(NewAuthorization("")))
	assert.True(t, IsNotFound(NewNotFound("ride", "x")))
	assert.True(t, IsInvalidTransition(InvalidTransitionError{}))
}
