package list_services

import (
	"context"

	"github.com/bookingjasa/booking-service/internal/service/catalog/models"
)

type CatalogService interface {
	List(ctx context.Context) (*models.OfferingListResponse, error)
	Get(ctx context.Context, id int64) (*models.OfferingResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
