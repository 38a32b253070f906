package catalog

import (
	"context"

	"github.com/bookingjasa/booking-service/internal/domain"
)

// CatalogRepository is the offerings storage interface this service needs.
type CatalogRepository interface {
	Create(ctx context.Context, offering *domain.ServiceOffering) (*domain.ServiceOffering, error)
	GetByID(ctx context.Context, id int64) (*domain.ServiceOffering, error)
	List(ctx context.Context) ([]*domain.ServiceOffering, error)
}

// Logger is the logging interface this service needs.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
