package submit_payment

import (
	"context"

	"github.com/bookingjasa/booking-service/internal/domain"
)

// BookingRepository is the bookings storage interface this use case needs.
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	UpdatePayment(ctx context.Context, id int64, method string, amountDue int64, evidenceRef string, status domain.BookingStatus) error
}

// CatalogRepository is the offerings storage interface this use case needs.
type CatalogRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.ServiceOffering, error)
}

// TransactionManager runs the read-modify-write atomically.
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// StatsInvalidator drops cached dashboard counters after a write.
type StatsInvalidator interface {
	Invalidate(ctx context.Context) error
}

// Logger is the logging interface this use case needs.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
