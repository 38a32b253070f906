package create_booking

import "errors"

var (
	// ErrOfferingNotFound is returned when the referenced service
	// offering does not exist.
	ErrOfferingNotFound = errors.New("create_booking: service offering not found")

	// ErrScheduleConflict is returned when a non-cancelled booking
	// already occupies the requested offering, date and time slot.
	ErrScheduleConflict = errors.New("create_booking: schedule conflict")

	// ErrInvalidInput is returned when required fields are missing or malformed.
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal is returned on internal use case failures.
	ErrInternal = errors.New("create_booking: internal error")
)
