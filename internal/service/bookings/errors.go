package bookings

import "errors"

var (
	// ErrBookingNotFound is returned when the booking does not exist.
	ErrBookingNotFound = errors.New("booking not found")

	// ErrAccessDenied is returned when the actor lacks ownership or
	// the required role for the operation.
	ErrAccessDenied = errors.New("access denied")

	// ErrInvalidStatus is returned for a status outside the enumerated set.
	ErrInvalidStatus = errors.New("invalid booking status")

	// ErrInvalidInput is returned on malformed input.
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal is returned on internal service failures.
	ErrInternal = errors.New("bookings service: internal error")
)
