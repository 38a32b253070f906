package catalog

import "errors"

var (
	// ErrOfferingNotFound is returned when the offering does not exist.
	ErrOfferingNotFound = errors.New("service offering not found")

	// ErrAccessDenied is returned when the actor lacks the required role.
	ErrAccessDenied = errors.New("access denied")

	// ErrInvalidInput is returned on malformed input.
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal is returned on internal service failures.
	ErrInternal = errors.New("catalog service: internal error")
)
