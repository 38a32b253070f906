package create_booking

import (
	"context"
	"time"

	"github.com/bookingjasa/booking-service/internal/domain"
	"github.com/bookingjasa/booking-service/pkg/types"
)

// BookingRepository is the bookings storage interface this use case needs.
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	GetSlotHolders(ctx context.Context, serviceID int64, date time.Time, slot types.TimeString) ([]*domain.Booking, error)
}

// CustomerRepository is the customers storage interface this use case needs.
type CustomerRepository interface {
	Create(ctx context.Context, customer *domain.Customer) (*domain.Customer, error)
}

// CatalogRepository is the offerings storage interface this use case needs.
type CatalogRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.ServiceOffering, error)
}

// TransactionManager runs the conflict check and the inserts atomically.
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
