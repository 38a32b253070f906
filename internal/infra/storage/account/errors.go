package account

import "errors"

var (
	// ErrAccountNotFound is returned when an account does not exist.
	ErrAccountNotFound = errors.New("account.repository: account not found")

	// ErrUsernameTaken is returned when the username is already registered.
	ErrUsernameTaken = errors.New("account.repository: username already taken")

	// ErrBuildQuery is returned when building the SQL query fails.
	ErrBuildQuery = errors.New("account.repository: failed to build query")

	// ErrExecQuery is returned when executing the SQL query fails.
	ErrExecQuery = errors.New("account.repository: failed to execute query")

	// ErrScanRow is returned when scanning a result row fails.
	ErrScanRow = errors.New("account.repository: failed to scan row")
)
