package bookings

import (
	"context"
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bookingjasa/booking-service/internal/domain"
	bookingRepo "github.com/bookingjasa/booking-service/internal/infra/storage/booking"
	"github.com/bookingjasa/booking-service/internal/service/bookings/models"
	"github.com/bookingjasa/booking-service/pkg/ptr"
)

// Fakes

type fakeRepo struct {
	bookings map[int64]*domain.Booking
	listed   []*domain.Booking
	filter   domain.BookingsFilter
	stats    *domain.BookingStats

	statusUpdates []domain.BookingStatus
	updateErr     error
	countCalls    int
}

func (f *fakeRepo) GetByID(_ context.Context, id int64) (*domain.Booking, error) {
	b, ok := f.bookings[id]
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}
	return b, nil
}

func (f *fakeRepo) GetByAccountID(_ context.Context, accountID string, status *domain.BookingStatus) ([]*domain.Booking, error) {
	out := make([]*domain.Booking, 0)
	for _, b := range f.listed {
		if b.AccountID != accountID {
			continue
		}
		if status != nil && b.Status != *status {
			continue
		}
		out = append(out, b)
	}
	return out, nil
}

func (f *fakeRepo) GetWithFilter(_ context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	f.filter = filter
	return f.listed, nil
}

func (f *fakeRepo) UpdateStatus(_ context.Context, id int64, status domain.BookingStatus) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	b, ok := f.bookings[id]
	if !ok {
		return bookingRepo.ErrBookingNotFound
	}
	b.Status = status
	f.statusUpdates = append(f.statusUpdates, status)
	return nil
}

func (f *fakeRepo) CountByStatus(context.Context) (*domain.BookingStats, error) {
	f.countCalls++
	return f.stats, nil
}

type fakeStatsCache struct {
	stored      *domain.BookingStats
	invalidated int
}

func (f *fakeStatsCache) Get(context.Context) (*domain.BookingStats, bool) {
	if f.stored == nil {
		return nil, false
	}
	return f.stored, true
}

func (f *fakeStatsCache) Set(_ context.Context, stats *domain.BookingStats) error {
	f.stored = stats
	return nil
}

func (f *fakeStatsCache) Invalidate(context.Context) error {
	f.stored = nil
	f.invalidated++
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

var (
	admin = domain.Actor{AccountID: "admin", Role: domain.RoleAdmin}
	budi  = domain.Actor{AccountID: "budi", Role: domain.RoleUser}
	siti  = domain.Actor{AccountID: "siti", Role: domain.RoleUser}
)

func seededRepo() *fakeRepo {
	b := &domain.Booking{
		ID:              1001,
		CustomerID:      1,
		ServiceID:       3,
		BookingDate:     time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC),
		TimeSlot:        "10:00",
		Status:          domain.StatusPendingVerification,
		PaymentMethod:   domain.PaymentMethodDeclared,
		AmountDue:       500000,
		EvidenceRef:     "blob-42",
		ServiceName:     "Fotografi Produk",
		ServiceCategory: "Kreatif",
		ServicePrice:    500000,
		DurationMinutes: 120,
		CustomerName:    "Budi Santoso",
		CustomerEmail:   "budi@example.com",
		CustomerPhone:   "0812345678",
		AccountID:       "budi",
		Note:            ptr.Ptr("jam 10 ya"),
	}
	return &fakeRepo{
		bookings: map[int64]*domain.Booking{1001: b},
		listed:   []*domain.Booking{b},
	}
}

func TestGetByID_Owner(t *testing.T) {
	svc := New(seededRepo(), nil, nopLogger{})

	resp, err := svc.GetByID(context.Background(), budi, 1001)
	require.NoError(t, err)
	assert.Equal(t, int64(1001), resp.ID)
	assert.Equal(t, "pending_verification", resp.Status)
}

func TestGetByID_Admin(t *testing.T) {
	svc := New(seededRepo(), nil, nopLogger{})

	resp, err := svc.GetByID(context.Background(), admin, 1001)
	require.NoError(t, err)
	assert.Equal(t, "budi", resp.AccountID)
}

func TestGetByID_ForeignBookingReadsAsAbsent(t *testing.T) {
	svc := New(seededRepo(), nil, nopLogger{})

	_, err := svc.GetByID(context.Background(), siti, 1001)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestGetByID_Missing(t *testing.T) {
	svc := New(seededRepo(), nil, nopLogger{})

	_, err := svc.GetByID(context.Background(), admin, 9999)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestGetAccountBookings_OwnHistory(t *testing.T) {
	svc := New(seededRepo(), nil, nopLogger{})

	resp, err := svc.GetAccountBookings(context.Background(), budi, &models.GetAccountBookingsRequest{AccountID: "budi"})
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Total)
}

func TestGetAccountBookings_ForeignHistoryDenied(t *testing.T) {
	svc := New(seededRepo(), nil, nopLogger{})

	_, err := svc.GetAccountBookings(context.Background(), siti, &models.GetAccountBookingsRequest{AccountID: "budi"})
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestGetAccountBookings_InvalidStatusFilter(t *testing.T) {
	svc := New(seededRepo(), nil, nopLogger{})

	_, err := svc.GetAccountBookings(context.Background(), budi, &models.GetAccountBookingsRequest{
		AccountID: "budi",
		Status:    ptr.Ptr("confirmed"),
	})
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestListAll_AdminOnly(t *testing.T) {
	repo := seededRepo()
	svc := New(repo, nil, nopLogger{})

	_, err := svc.ListAll(context.Background(), budi, &models.ListBookingsRequest{})
	assert.ErrorIs(t, err, ErrAccessDenied)

	resp, err := svc.ListAll(context.Background(), admin, &models.ListBookingsRequest{IncludeCancelled: true})
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Total)
	assert.True(t, repo.filter.IncludeCancelled)
}

func TestSetStatus(t *testing.T) {
	repo := seededRepo()
	cache := &fakeStatsCache{stored: &domain.BookingStats{Total: 1}}
	svc := New(repo, cache, nopLogger{})

	resp, err := svc.SetStatus(context.Background(), admin, 1001, "cancelled")
	require.NoError(t, err)
	assert.Equal(t, "cancelled", resp.Status)
	assert.Equal(t, 1, cache.invalidated)

	// The override is unconstrained: a cancelled booking can be moved
	// back to any status, re-occupying the slot.
	resp, err = svc.SetStatus(context.Background(), admin, 1001, "approved")
	require.NoError(t, err)
	assert.Equal(t, "approved", resp.Status)
}

func TestSetStatus_NonAdmin(t *testing.T) {
	svc := New(seededRepo(), nil, nopLogger{})

	_, err := svc.SetStatus(context.Background(), budi, 1001, "approved")
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestSetStatus_InvalidStatus(t *testing.T) {
	svc := New(seededRepo(), nil, nopLogger{})

	_, err := svc.SetStatus(context.Background(), admin, 1001, "confirmed")
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestSetStatus_NotFound(t *testing.T) {
	svc := New(seededRepo(), nil, nopLogger{})

	_, err := svc.SetStatus(context.Background(), admin, 9999, "approved")
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestVerifyPayment_ApproveThenReject(t *testing.T) {
	repo := seededRepo()
	svc := New(repo, nil, nopLogger{})

	resp, err := svc.VerifyPayment(context.Background(), admin, 1001, DecisionApprove)
	require.NoError(t, err)
	assert.Equal(t, "approved", resp.Status)

	// Verdicts may be revised; there is no precondition on the current
	// status and the last write wins.
	resp, err = svc.VerifyPayment(context.Background(), admin, 1001, DecisionReject)
	require.NoError(t, err)
	assert.Equal(t, "rejected", resp.Status)

	assert.Equal(t, []domain.BookingStatus{domain.StatusApproved, domain.StatusRejected}, repo.statusUpdates)
}

func TestVerifyPayment_NonAdmin(t *testing.T) {
	svc := New(seededRepo(), nil, nopLogger{})

	_, err := svc.VerifyPayment(context.Background(), budi, 1001, DecisionApprove)
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestVerifyPayment_InvalidDecision(t *testing.T) {
	svc := New(seededRepo(), nil, nopLogger{})

	_, err := svc.VerifyPayment(context.Background(), admin, 1001, Decision("maybe"))
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestStats_CacheAside(t *testing.T) {
	repo := seededRepo()
	repo.stats = &domain.BookingStats{Total: 5, Pending: 2, PendingVerification: 1, Approved: 2}
	cache := &fakeStatsCache{}
	svc := New(repo, cache, nopLogger{})

	// Miss populates the cache.
	stats, err := svc.Stats(context.Background(), admin)
	require.NoError(t, err)
	assert.Equal(t, int64(5), stats.Total)
	assert.Equal(t, 1, repo.countCalls)
	require.NotNil(t, cache.stored)

	// Hit skips the database.
	_, err = svc.Stats(context.Background(), admin)
	require.NoError(t, err)
	assert.Equal(t, 1, repo.countCalls)
}

func TestStats_NonAdmin(t *testing.T) {
	svc := New(seededRepo(), nil, nopLogger{})

	_, err := svc.Stats(context.Background(), budi)
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestStats_NoCache(t *testing.T) {
	repo := seededRepo()
	repo.stats = &domain.BookingStats{Total: 1}
	svc := New(repo, nil, nopLogger{})

	stats, err := svc.Stats(context.Background(), admin)
	require.NoError(t, err)
	assert.Equal(t, int64(1), stats.Total)
}

func TestSummaries(t *testing.T) {
	repo := seededRepo()
	svc := New(repo, nil, nopLogger{})

	summaries, err := svc.Summaries(context.Background(), admin)
	require.NoError(t, err)
	require.Len(t, summaries, 1)

	// The review table includes cancelled bookings.
	assert.True(t, repo.filter.IncludeCancelled)

	sum := summaries[0]
	assert.Equal(t, int64(1001), sum.BookingID)
	assert.Equal(t, "2025-10-15", sum.Date)
	assert.Equal(t, "jam 10 ya", sum.Note)
}

func TestExportCSV(t *testing.T) {
	svc := New(seededRepo(), nil, nopLogger{})

	data, err := svc.ExportCSV(context.Background(), admin)
	require.NoError(t, err)

	records, err := csv.NewReader(strings.NewReader(string(data))).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, exportHeader, records[0])
	assert.Equal(t, []string{
		"1001", "2025-10-15", "10:00", "pending_verification",
		"Fotografi Produk", "Kreatif", "500000", "120",
		"Budi Santoso", "budi@example.com", "0812345678", "budi",
		"QRIS", "500000", "blob-42", "jam 10 ya",
	}, records[1])
}

func TestSummaries_OwnerScoped(t *testing.T) {
	repo := seededRepo()
	svc := New(repo, nil, nopLogger{})

	// A regular account exports only its own bookings.
	_, err := svc.Summaries(context.Background(), budi)
	require.NoError(t, err)
	require.NotNil(t, repo.filter.AccountID)
	assert.Equal(t, "budi", *repo.filter.AccountID)
	assert.True(t, repo.filter.IncludeCancelled)
}
