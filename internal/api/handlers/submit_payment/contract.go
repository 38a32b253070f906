package submit_payment

import (
	"context"
	"io"

	submitPayment "github.com/bookingjasa/booking-service/internal/usecase/submit_payment"
)

type SubmitPaymentUseCase interface {
	Execute(ctx context.Context, req *submitPayment.Request) (*submitPayment.Response, error)
}

// EvidenceUploader stores the payment artifact and returns an opaque
// reference.
type EvidenceUploader interface {
	Upload(ctx context.Context, filename string, content io.Reader) (string, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
