// Package common defines shared constants and sentinel errors used across
// the reservation core, the gRPC layer and the CLI. Callers should use
// errors.Is to match these values.
package common

import "errors"

var (
	// Lookup errors.
	ErrorNotFound = errors.New("not found")

	// Service-level errors.
	ErrorInternal     = errors.New("internal error")
	ErrorUnauthorized = errors.New("unauthorized")

	// Booking conflict: an active reservation already holds the slot.
	ErrorDuplicateReservation = errors.New("an active reservation already exists for this equipment and shift")

	// Rejected input (bad shift, malformed date or clock value, inverted times).
	ErrorInvalidInput = errors.New("invalid input")

	// Session token errors.
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")
)
