package accounts

import (
	"context"

	"github.com/bookingjasa/booking-service/internal/domain"
)

// AccountRepository is the account storage interface this service needs.
type AccountRepository interface {
	Create(ctx context.Context, account *domain.Account) (*domain.Account, error)
	GetByUsername(ctx context.Context, username string) (*domain.Account, error)
}

// Logger is the logging interface this service needs.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
