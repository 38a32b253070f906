package accounts

import "errors"

var (
	// ErrUsernameTaken is returned when the username is already registered.
	ErrUsernameTaken = errors.New("username already taken")

	// ErrInvalidCredentials is returned when the username/password pair
	// does not match an account.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrInvalidInput is returned on malformed input.
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal is returned on internal service failures.
	ErrInternal = errors.New("accounts service: internal error")
)
