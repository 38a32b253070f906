package list_bookings

import (
	"context"

	"github.com/bookingjasa/booking-service/internal/domain"
	"github.com/bookingjasa/booking-service/internal/service/bookings/models"
)

type BookingService interface {
	ListAll(ctx context.Context, actor domain.Actor, req *models.ListBookingsRequest) (*models.BookingListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
