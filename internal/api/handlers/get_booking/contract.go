package get_booking

import (
	"context"

	"github.com/bookingjasa/booking-service/internal/domain"
	"github.com/bookingjasa/booking-service/internal/service/bookings/models"
)

type BookingService interface {
	GetByID(ctx context.Context, actor domain.Actor, id int64) (*models.BookingResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
