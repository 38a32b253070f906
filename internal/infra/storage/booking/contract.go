package booking

import (
	"github.com/bookingjasa/booking-service/pkg/dbmetrics"
)

// Reuse the dbmetrics executor interfaces so the repository works
// against *sql.DB, the instrumented wrapper, and open transactions.
type DBExecutor = dbmetrics.DBExecutor
type TxExecutor = dbmetrics.TxExecutor
