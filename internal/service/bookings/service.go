package bookings

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"strconv"

	"github.com/bookingjasa/booking-service/internal/domain"
	bookingRepo "github.com/bookingjasa/booking-service/internal/infra/storage/booking"
	"github.com/bookingjasa/booking-service/internal/service/bookings/models"
)

// Decision is an administrative verdict on submitted payment evidence.
type Decision string

const (
	DecisionApprove Decision = "approve"
	DecisionReject  Decision = "reject"
)

// Service implements booking reads and administrative transitions:
// lookups, listings, the counters dashboard, payment verification and
// the unconstrained status override.
type Service struct {
	repo       BookingRepository
	statsCache StatsCache
	logger     Logger
}

// New creates the service. statsCache may be nil when the counters
// cache is disabled.
func New(repo BookingRepository, statsCache StatsCache, logger Logger) *Service {
	return &Service{
		repo:       repo,
		statsCache: statsCache,
		logger:     logger,
	}
}

// GetByID returns one booking. Non-admin actors only see their own
// bookings; a foreign booking surfaces as not found so its existence
// is not leaked.
func (s *Service) GetByID(ctx context.Context, actor domain.Actor, id int64) (*models.BookingResponse, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: booking id must be positive", ErrInvalidInput)
	}

	booking, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: failed to get booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
	}

	if !actor.IsAdmin() && booking.AccountID != actor.AccountID {
		s.logger.Warn("GetByID: account=%s denied access to booking id=%d", actor.AccountID, id)
		return nil, ErrBookingNotFound
	}

	return models.FromDomainBooking(booking), nil
}

// GetAccountBookings returns the booking history of one account,
// newest-independent insertion order. Non-admin actors may only read
// their own history.
func (s *Service) GetAccountBookings(ctx context.Context, actor domain.Actor, req *models.GetAccountBookingsRequest) (*models.BookingListResponse, error) {
	if req.AccountID == "" {
		return nil, fmt.Errorf("%w: accountID is required", ErrInvalidInput)
	}
	if !actor.IsAdmin() && req.AccountID != actor.AccountID {
		s.logger.Warn("GetAccountBookings: account=%s denied access to account=%s", actor.AccountID, req.AccountID)
		return nil, ErrAccessDenied
	}

	var status *domain.BookingStatus
	if req.Status != nil {
		parsed, err := models.ToDomainBookingStatus(*req.Status)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, *req.Status)
		}
		status = &parsed
	}

	bookings, err := s.repo.GetByAccountID(ctx, req.AccountID, status)
	if err != nil {
		s.logger.Error("GetAccountBookings: failed for account=%s: %v", req.AccountID, err)
		return nil, fmt.Errorf("%w: failed to list bookings: %v", ErrInternal, err)
	}

	return models.FromDomainBookingList(bookings), nil
}

// ListAll returns bookings matching the administrative filter.
func (s *Service) ListAll(ctx context.Context, actor domain.Actor, req *models.ListBookingsRequest) (*models.BookingListResponse, error) {
	if !actor.IsAdmin() {
		s.logger.Warn("ListAll: account=%s is not an admin", actor.AccountID)
		return nil, ErrAccessDenied
	}

	filter := domain.BookingsFilter{
		AccountID:        req.AccountID,
		ServiceID:        req.ServiceID,
		IncludeCancelled: req.IncludeCancelled,
	}
	if req.Status != nil {
		parsed, err := models.ToDomainBookingStatus(*req.Status)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, *req.Status)
		}
		filter.Status = &parsed
	}

	bookings, err := s.repo.GetWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("ListAll: failed to list bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to list bookings: %v", ErrInternal, err)
	}

	return models.FromDomainBookingList(bookings), nil
}

// SetStatus overrides a booking's status to any enumerated value. The
// transition is deliberately unconstrained: the operator is trusted to
// move a booking anywhere, including out of cancellation, which frees
// or re-occupies the slot as a side effect of the conflict rule.
func (s *Service) SetStatus(ctx context.Context, actor domain.Actor, id int64, statusStr string) (*models.BookingResponse, error) {
	if !actor.IsAdmin() {
		s.logger.Warn("SetStatus: account=%s is not an admin", actor.AccountID)
		return nil, ErrAccessDenied
	}
	if id <= 0 {
		return nil, fmt.Errorf("%w: booking id must be positive", ErrInvalidInput)
	}

	status, err := models.ToDomainBookingStatus(statusStr)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, statusStr)
	}

	if err := s.repo.UpdateStatus(ctx, id, status); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return nil, ErrBookingNotFound
		}
		s.logger.Error("SetStatus: failed to update booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: failed to update status: %v", ErrInternal, err)
	}

	s.invalidateStats(ctx, "SetStatus")

	booking, err := s.repo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("SetStatus: failed to re-read booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
	}

	s.logger.Info("SetStatus: booking id=%d moved to %s by account=%s", id, status, actor.AccountID)
	return models.FromDomainBooking(booking), nil
}

// VerifyPayment records the administrative verdict on a booking's
// payment evidence. Approve moves the booking to approved, reject to
// rejected. There is no precondition on the current status: verdicts
// may be revised and the last write wins.
func (s *Service) VerifyPayment(ctx context.Context, actor domain.Actor, id int64, decision Decision) (*models.BookingResponse, error) {
	if !actor.IsAdmin() {
		s.logger.Warn("VerifyPayment: account=%s is not an admin", actor.AccountID)
		return nil, ErrAccessDenied
	}
	if id <= 0 {
		return nil, fmt.Errorf("%w: booking id must be positive", ErrInvalidInput)
	}

	var status domain.BookingStatus
	switch decision {
	case DecisionApprove:
		status = domain.StatusApproved
	case DecisionReject:
		status = domain.StatusRejected
	default:
		return nil, fmt.Errorf("%w: decision must be approve or reject", ErrInvalidInput)
	}

	if err := s.repo.UpdateStatus(ctx, id, status); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return nil, ErrBookingNotFound
		}
		s.logger.Error("VerifyPayment: failed to update booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: failed to update status: %v", ErrInternal, err)
	}

	s.invalidateStats(ctx, "VerifyPayment")

	booking, err := s.repo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("VerifyPayment: failed to re-read booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
	}

	s.logger.Info("VerifyPayment: booking id=%d marked %s by account=%s", id, status, actor.AccountID)
	return models.FromDomainBooking(booking), nil
}

// Stats returns the dashboard counters: total bookings plus per-status
// counts for the statuses the operator watches. Served cache-aside
// when a cache is configured.
func (s *Service) Stats(ctx context.Context, actor domain.Actor) (*domain.BookingStats, error) {
	if !actor.IsAdmin() {
		s.logger.Warn("Stats: account=%s is not an admin", actor.AccountID)
		return nil, ErrAccessDenied
	}

	if s.statsCache != nil {
		if stats, ok := s.statsCache.Get(ctx); ok {
			return stats, nil
		}
	}

	stats, err := s.repo.CountByStatus(ctx)
	if err != nil {
		s.logger.Error("Stats: failed to count bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to count bookings: %v", ErrInternal, err)
	}

	if s.statsCache != nil {
		if err := s.statsCache.Set(ctx, stats); err != nil {
			s.logger.Warn("Stats: failed to cache counters: %v", err)
		}
	}

	return stats, nil
}

// Summaries returns the flat summary projection, cancelled bookings
// included. Admins see every booking; other actors see only their own.
func (s *Service) Summaries(ctx context.Context, actor domain.Actor) ([]domain.BookingSummary, error) {
	filter := domain.BookingsFilter{IncludeCancelled: true}
	if !actor.IsAdmin() {
		filter.AccountID = &actor.AccountID
	}

	bookings, err := s.repo.GetWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("Summaries: failed to list bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to list bookings: %v", ErrInternal, err)
	}

	summaries := make([]domain.BookingSummary, 0, len(bookings))
	for _, b := range bookings {
		summaries = append(summaries, domain.Summarize(b))
	}
	return summaries, nil
}

var exportHeader = []string{
	"booking_id", "date", "time_slot", "status",
	"service_name", "service_category", "service_price", "duration_minutes",
	"customer_name", "customer_email", "customer_phone", "account_id",
	"payment_method", "amount_due", "evidence_ref", "note",
}

// ExportCSV renders the summary projection as CSV, one row per
// booking in the summary field order.
func (s *Service) ExportCSV(ctx context.Context, actor domain.Actor) ([]byte, error) {
	summaries, err := s.Summaries(ctx, actor)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(exportHeader); err != nil {
		return nil, fmt.Errorf("%w: failed to write csv header: %v", ErrInternal, err)
	}
	for _, sum := range summaries {
		row := []string{
			strconv.FormatInt(sum.BookingID, 10),
			sum.Date,
			sum.TimeSlot,
			sum.Status,
			sum.ServiceName,
			sum.ServiceCategory,
			strconv.FormatInt(sum.ServicePrice, 10),
			strconv.Itoa(sum.DurationMinutes),
			sum.CustomerName,
			sum.CustomerEmail,
			sum.CustomerPhone,
			sum.AccountID,
			sum.PaymentMethod,
			strconv.FormatInt(sum.AmountDue, 10),
			sum.EvidenceRef,
			sum.Note,
		}
		if err := w.Write(row); err != nil {
			return nil, fmt.Errorf("%w: failed to write csv row: %v", ErrInternal, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("%w: failed to flush csv: %v", ErrInternal, err)
	}

	return buf.Bytes(), nil
}

func (s *Service) invalidateStats(ctx context.Context, op string) {
	if s.statsCache == nil {
		return
	}
	if err := s.statsCache.Invalidate(ctx); err != nil {
		s.logger.Warn("%s: failed to invalidate stats cache: %v", op, err)
	}
}
