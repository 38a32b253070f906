package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/bookingjasa/booking-service/internal/domain"
	catalogRepo "github.com/bookingjasa/booking-service/internal/infra/storage/catalog"
)

// UseCase creates a booking: conflict check, customer record and
// booking insert run inside one serializable transaction so two
// concurrent calls cannot both claim the same slot.
type UseCase struct {
	bookingRepo  BookingRepository
	customerRepo CustomerRepository
	catalogRepo  CatalogRepository
	txManager    TransactionManager
	statsCache   StatsInvalidator
	logger       Logger
}

// NewUseCase creates the use case. statsCache may be nil when the
// counters cache is disabled.
func NewUseCase(
	bookingRepo BookingRepository,
	customerRepo CustomerRepository,
	catalogRepo CatalogRepository,
	txManager TransactionManager,
	statsCache StatsInvalidator,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		customerRepo: customerRepo,
		catalogRepo:  catalogRepo,
		txManager:    txManager,
		statsCache:   statsCache,
		logger:       logger,
	}
}

// Execute creates the booking. Fails with ErrInvalidInput,
// ErrOfferingNotFound or ErrScheduleConflict without mutating anything.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: account=%s, service=%d, date=%s, slot=%s",
		req.AccountID, req.ServiceID, req.Date.Format(domain.DateFormat), req.TimeSlot)

	normalizeRequest(req)
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	var result *domain.Booking

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// The offering lookup runs inside the transaction so a missing
		// offering aborts before any customer row is written.
		offering, err := uc.catalogRepo.GetByID(txCtx, req.ServiceID)
		if err != nil {
			if errors.Is(err, catalogRepo.ErrOfferingNotFound) {
				uc.logger.Warn("CreateBooking: offering id=%d not found", req.ServiceID)
				return ErrOfferingNotFound
			}
			uc.logger.Error("CreateBooking: failed to get offering id=%d: %v", req.ServiceID, err)
			return fmt.Errorf("%w: failed to get offering: %v", ErrInternal, err)
		}

		// Conflict rule: at most one non-cancelled booking per
		// (offering, date, slot). The holders are locked FOR UPDATE.
		holders, err := uc.bookingRepo.GetSlotHolders(txCtx, req.ServiceID, req.Date, req.TimeSlot)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to check slot: %v", err)
			return fmt.Errorf("%w: failed to check slot: %v", ErrInternal, err)
		}
		if len(holders) > 0 {
			uc.logger.Warn("CreateBooking: slot taken, service=%d date=%s slot=%s by booking id=%d",
				req.ServiceID, req.Date.Format(domain.DateFormat), req.TimeSlot, holders[0].ID)
			return ErrScheduleConflict
		}

		// A fresh customer row per submission; repeat bookings by the
		// same account are not deduplicated.
		customer, err := uc.customerRepo.Create(txCtx, &domain.Customer{
			Name:      req.CustomerName,
			Email:     req.CustomerEmail,
			Phone:     req.CustomerPhone,
			AccountID: req.AccountID,
		})
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create customer: %v", err)
			return fmt.Errorf("%w: failed to create customer: %v", ErrInternal, err)
		}

		booking := &domain.Booking{
			CustomerID:  customer.ID,
			ServiceID:   offering.ID,
			BookingDate: req.Date,
			TimeSlot:    req.TimeSlot,
			Note:        req.Note,
			Status:      domain.StatusPending,

			PaymentMethod: domain.PaymentMethodNone,
			// Price captured by value at booking time.
			AmountDue:   offering.Price,
			EvidenceRef: domain.EvidenceRefNone,

			ServiceName:     offering.Name,
			ServiceCategory: offering.Category,
			ServicePrice:    offering.Price,
			DurationMinutes: offering.DurationMinutes,
			CustomerName:    customer.Name,
			CustomerEmail:   customer.Email,
			CustomerPhone:   customer.Phone,
			AccountID:       customer.AccountID,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})
	if err != nil {
		return nil, err
	}

	if uc.statsCache != nil {
		if err := uc.statsCache.Invalidate(ctx); err != nil {
			uc.logger.Warn("CreateBooking: failed to invalidate stats cache: %v", err)
		}
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d", result.ID)

	return &Response{
		ID:              result.ID,
		CustomerID:      result.CustomerID,
		ServiceID:       result.ServiceID,
		BookingDate:     result.BookingDate,
		TimeSlot:        result.TimeSlot,
		Note:            result.Note,
		Status:          string(result.Status),
		PaymentMethod:   result.PaymentMethod,
		AmountDue:       result.AmountDue,
		EvidenceRef:     result.EvidenceRef,
		ServiceName:     result.ServiceName,
		ServiceCategory: result.ServiceCategory,
		ServicePrice:    result.ServicePrice,
		DurationMinutes: result.DurationMinutes,
		CustomerName:    result.CustomerName,
		CustomerEmail:   result.CustomerEmail,
		CustomerPhone:   result.CustomerPhone,
		AccountID:       result.AccountID,
		CreatedAt:       result.CreatedAt,
		UpdatedAt:       result.UpdatedAt,
	}, nil
}
