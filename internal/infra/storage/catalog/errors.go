package catalog

import "errors"

var (
	// ErrOfferingNotFound is returned when a service offering does not exist.
	ErrOfferingNotFound = errors.New("catalog.repository: service offering not found")

	// ErrBuildQuery is returned when building the SQL query fails.
	ErrBuildQuery = errors.New("catalog.repository: failed to build query")

	// ErrExecQuery is returned when executing the SQL query fails.
	ErrExecQuery = errors.New("catalog.repository: failed to execute query")

	// ErrScanRow is returned when scanning a result row fails.
	ErrScanRow = errors.New("catalog.repository: failed to scan row")
)
