package update_status

import (
	"context"

	"github.com/bookingjasa/booking-service/internal/domain"
	"github.com/bookingjasa/booking-service/internal/service/bookings/models"
)

type BookingService interface {
	SetStatus(ctx context.Context, actor domain.Actor, id int64, status string) (*models.BookingResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
