package verify_payment

import (
	"context"

	"github.com/bookingjasa/booking-service/internal/domain"
	"github.com/bookingjasa/booking-service/internal/service/bookings"
	"github.com/bookingjasa/booking-service/internal/service/bookings/models"
)

type BookingService interface {
	VerifyPayment(ctx context.Context, actor domain.Actor, id int64, decision bookings.Decision) (*models.BookingResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
