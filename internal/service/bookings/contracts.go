package bookings

import (
	"context"

	"github.com/bookingjasa/booking-service/internal/domain"
)

// BookingRepository is the bookings storage interface this service needs.
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	GetByAccountID(ctx context.Context, accountID string, status *domain.BookingStatus) ([]*domain.Booking, error)
	GetWithFilter(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error)
	UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error
	CountByStatus(ctx context.Context) (*domain.BookingStats, error)
}

// StatsCache caches the dashboard counters. May be backed by redis or
// absent entirely (nil).
type StatsCache interface {
	Get(ctx context.Context) (*domain.BookingStats, bool)
	Set(ctx context.Context, stats *domain.BookingStats) error
	Invalidate(ctx context.Context) error
}

// Logger is the logging interface this service needs.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
