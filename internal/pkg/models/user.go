package models

import "github.com/google/uuid"

// Role is the account type issued by the identity provider
type Role string

const (
	RoleClient Role = "client"
	RoleDriver Role = "driver"
)

// Valid reports whether the role is known
func (r Role) Valid() bool {
	return r == RoleClient || r == RoleDriver
}

// Principal is the authenticated caller of a request
type Principal struct {
	UserID uuid.UUID `json:"user_id"`
	Role   Role      `json:"role"`
}

// IsDriver reports whether the caller acts as a driver
func (p Principal) IsDriver() bool {
	return p.Role == RoleDriver
}

// IsClient reports whether the caller acts as a client
func (p Principal) IsClient() bool {
	return p.Role == RoleClient
}

// UserProfile is the read-only identity data joined into bookings
type UserProfile struct {
	ID          uuid.UUID `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	LastName    string    `json:"last_name" db:"last_name"`
	Email       string    `json:"email" db:"email"`
	PhoneNumber string    `json:"phone_number,omitempty" db:"phone_number"`
	Role        Role      `json:"role,omitempty" db:"role"`
}

// FullName joins first and last name
func (u UserProfile) FullName() string {
	if u.LastName == "" {
		return u.Name
	}
	return u.Name + " " + u.LastName
}
