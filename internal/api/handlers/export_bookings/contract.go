package export_bookings

import (
	"context"

	"github.com/bookingjasa/booking-service/internal/domain"
)

type BookingService interface {
	ExportCSV(ctx context.Context, actor domain.Actor) ([]byte, error)
	Summaries(ctx context.Context, actor domain.Actor) ([]domain.BookingSummary, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
