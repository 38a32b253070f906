package submit_payment

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/bookingjasa/booking-service/internal/domain"
	bookingRepo "github.com/bookingjasa/booking-service/internal/infra/storage/booking"
	catalogRepo "github.com/bookingjasa/booking-service/internal/infra/storage/catalog"
)

// UseCase records a payment submission on a booking owned by the
// acting account: declared method, re-read amount due, evidence
// reference, and the transition to pending verification.
type UseCase struct {
	bookingRepo BookingRepository
	catalogRepo CatalogRepository
	txManager   TransactionManager
	statsCache  StatsInvalidator
	logger      Logger
}

// NewUseCase creates the use case. statsCache may be nil when the
// counters cache is disabled.
func NewUseCase(
	bookingRepo BookingRepository,
	catalogRepo CatalogRepository,
	txManager TransactionManager,
	statsCache StatsInvalidator,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		catalogRepo: catalogRepo,
		txManager:   txManager,
		statsCache:  statsCache,
		logger:      logger,
	}
}

// Execute records the payment submission.
//
// The amount due is deliberately re-read from the offering's current
// price here, unlike creation time where the price is captured by
// value. Both behaviors are kept on purpose; see the repository docs.
//
// The transition to pending verification is unconditional: submitting
// again overwrites the previous evidence and resets the status.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("SubmitPayment: booking=%d, account=%s", req.BookingID, req.AccountID)

	req.EvidenceRef = strings.TrimSpace(req.EvidenceRef)
	if req.EvidenceRef == "" {
		uc.logger.Warn("SubmitPayment: empty evidence reference for booking=%d", req.BookingID)
		return nil, fmt.Errorf("%w: evidence reference is required", ErrInvalidInput)
	}
	if req.BookingID <= 0 {
		return nil, fmt.Errorf("%w: bookingID must be positive", ErrInvalidInput)
	}
	if strings.TrimSpace(req.AccountID) == "" {
		return nil, fmt.Errorf("%w: accountID is required", ErrInvalidInput)
	}

	var result *Response

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		booking, err := uc.bookingRepo.GetByID(txCtx, req.BookingID)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				uc.logger.Warn("SubmitPayment: booking id=%d not found", req.BookingID)
				return ErrBookingNotFound
			}
			uc.logger.Error("SubmitPayment: failed to get booking id=%d: %v", req.BookingID, err)
			return fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
		}

		if booking.AccountID != req.AccountID {
			uc.logger.Warn("SubmitPayment: account=%s does not own booking id=%d", req.AccountID, req.BookingID)
			return ErrAccessDenied
		}

		offering, err := uc.catalogRepo.GetByID(txCtx, booking.ServiceID)
		if err != nil {
			if errors.Is(err, catalogRepo.ErrOfferingNotFound) {
				// Offerings are never deleted; a dangling reference is
				// a data integrity failure, not a caller error.
				uc.logger.Error("SubmitPayment: offering id=%d missing for booking id=%d", booking.ServiceID, booking.ID)
				return fmt.Errorf("%w: offering id=%d missing", ErrInternal, booking.ServiceID)
			}
			uc.logger.Error("SubmitPayment: failed to get offering id=%d: %v", booking.ServiceID, err)
			return fmt.Errorf("%w: failed to get offering: %v", ErrInternal, err)
		}

		err = uc.bookingRepo.UpdatePayment(
			txCtx,
			booking.ID,
			domain.PaymentMethodDeclared,
			offering.Price,
			req.EvidenceRef,
			domain.StatusPendingVerification,
		)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				return ErrBookingNotFound
			}
			uc.logger.Error("SubmitPayment: failed to update booking id=%d: %v", booking.ID, err)
			return fmt.Errorf("%w: failed to update booking: %v", ErrInternal, err)
		}

		result = &Response{
			BookingID:     booking.ID,
			Status:        string(domain.StatusPendingVerification),
			PaymentMethod: domain.PaymentMethodDeclared,
			AmountDue:     offering.Price,
			EvidenceRef:   req.EvidenceRef,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if uc.statsCache != nil {
		if err := uc.statsCache.Invalidate(ctx); err != nil {
			uc.logger.Warn("SubmitPayment: failed to invalidate stats cache: %v", err)
		}
	}

	uc.logger.Info("SubmitPayment: booking id=%d moved to %s", result.BookingID, result.Status)
	return result, nil
}
