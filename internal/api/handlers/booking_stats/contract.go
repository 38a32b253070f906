package booking_stats

import (
	"context"

	"github.com/bookingjasa/booking-service/internal/domain"
)

type BookingService interface {
	Stats(ctx context.Context, actor domain.Actor) (*domain.BookingStats, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
