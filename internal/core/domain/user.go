package domain

import (
	"errors"
	"time"
)

const (
	RoleAdmin   = "admin"
	RoleShipper = "shipper"
	RoleCarrier = "carrier"
)

var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrUserNotFound = errors.New("user not found")
var ErrUserExists = errors.New("user already exists")

// User models an authenticated actor in the marketplace. Shippers request
// quotes; carriers manage their rate schedules; admins see everything.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email,omitempty"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	// CarrierID links a carrier-role user to its carrier profile. Empty for
	// shippers and admins.
	CarrierID string    `json:"carrier_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
