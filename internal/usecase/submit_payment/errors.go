package submit_payment

import "errors"

var (
	// ErrBookingNotFound is returned when the booking does not exist.
	ErrBookingNotFound = errors.New("submit_payment: booking not found")

	// ErrAccessDenied is returned when the acting account does not own
	// the booking. Handlers must not let this reveal whether the
	// booking exists for someone else.
	ErrAccessDenied = errors.New("submit_payment: access denied")

	// ErrInvalidInput is returned when the evidence reference is missing.
	ErrInvalidInput = errors.New("submit_payment: invalid input data")

	// ErrInternal is returned on internal use case failures.
	ErrInternal = errors.New("submit_payment: internal error")
)
