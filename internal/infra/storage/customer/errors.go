package customer

import "errors"

var (
	// ErrCustomerNotFound is returned when a customer does not exist.
	ErrCustomerNotFound = errors.New("customer.repository: customer not found")

	// ErrBuildQuery is returned when building the SQL query fails.
	ErrBuildQuery = errors.New("customer.repository: failed to build query")

	// ErrExecQuery is returned when executing the SQL query fails.
	ErrExecQuery = errors.New("customer.repository: failed to execute query")

	// ErrScanRow is returned when scanning a result row fails.
	ErrScanRow = errors.New("customer.repository: failed to scan row")
)
