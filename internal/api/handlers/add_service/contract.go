package add_service

import (
	"context"

	"github.com/bookingjasa/booking-service/internal/domain"
	"github.com/bookingjasa/booking-service/internal/service/catalog/models"
)

type CatalogService interface {
	Add(ctx context.Context, actor domain.Actor, req *models.AddOfferingRequest) (*models.OfferingResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
