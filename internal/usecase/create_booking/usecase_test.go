package create_booking

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bookingjasa/booking-service/internal/domain"
	catalogRepo "github.com/bookingjasa/booking-service/internal/infra/storage/catalog"
	"github.com/bookingjasa/booking-service/pkg/ptr"
	"github.com/bookingjasa/booking-service/pkg/types"
)

// Fakes

type fakeBookingRepo struct {
	holders   []*domain.Booking
	holderErr error
	created   *domain.Booking
	createErr error
	nextID    int64
}

func (f *fakeBookingRepo) Create(_ context.Context, b *domain.Booking) (*domain.Booking, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	out := *b
	out.ID = f.nextID
	out.CreatedAt = time.Now()
	out.UpdatedAt = out.CreatedAt
	f.created = &out
	return &out, nil
}

func (f *fakeBookingRepo) GetSlotHolders(_ context.Context, _ int64, _ time.Time, _ types.TimeString) ([]*domain.Booking, error) {
	return f.holders, f.holderErr
}

type fakeCustomerRepo struct {
	created   *domain.Customer
	createErr error
}

func (f *fakeCustomerRepo) Create(_ context.Context, c *domain.Customer) (*domain.Customer, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	out := *c
	out.ID = 1
	f.created = &out
	return &out, nil
}

type fakeCatalogRepo struct {
	offering *domain.ServiceOffering
	err      error
}

func (f *fakeCatalogRepo) GetByID(_ context.Context, _ int64) (*domain.ServiceOffering, error) {
	return f.offering, f.err
}

type fakeTxManager struct {
	calls int
}

func (f *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	f.calls++
	return fn(ctx)
}

type fakeInvalidator struct {
	calls int
	err   error
}

func (f *fakeInvalidator) Invalidate(context.Context) error {
	f.calls++
	return f.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func validRequest() *Request {
	return &Request{
		AccountID:     "budi",
		CustomerName:  "Budi Santoso",
		CustomerEmail: "budi@example.com",
		CustomerPhone: "0812345678",
		ServiceID:     3,
		Date:          time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC),
		TimeSlot:      "10:00",
	}
}

func offering() *domain.ServiceOffering {
	return &domain.ServiceOffering{
		ID:              3,
		Name:            "Fotografi Produk",
		Category:        "Kreatif",
		Price:           500000,
		DurationMinutes: 120,
	}
}

func TestExecute_Success(t *testing.T) {
	bookings := &fakeBookingRepo{nextID: 1001}
	customers := &fakeCustomerRepo{}
	catalog := &fakeCatalogRepo{offering: offering()}
	tx := &fakeTxManager{}
	cache := &fakeInvalidator{}

	uc := NewUseCase(bookings, customers, catalog, tx, cache, nopLogger{})

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, int64(1001), resp.ID)
	assert.Equal(t, string(domain.StatusPending), resp.Status)
	assert.Equal(t, domain.PaymentMethodNone, resp.PaymentMethod)
	assert.Equal(t, domain.EvidenceRefNone, resp.EvidenceRef)

	// Price is captured by value at creation time.
	assert.Equal(t, int64(500000), resp.AmountDue)
	assert.Equal(t, int64(500000), resp.ServicePrice)

	// Denormalized fields come from the offering and the customer.
	assert.Equal(t, "Fotografi Produk", resp.ServiceName)
	assert.Equal(t, "Budi Santoso", resp.CustomerName)
	assert.Equal(t, "budi", resp.AccountID)

	assert.Equal(t, 1, tx.calls)
	assert.Equal(t, 1, cache.calls)
	require.NotNil(t, customers.created)
	assert.Equal(t, "budi", customers.created.AccountID)
}

func TestExecute_ScheduleConflict(t *testing.T) {
	bookings := &fakeBookingRepo{
		nextID:  1002,
		holders: []*domain.Booking{{ID: 1001, Status: domain.StatusPending}},
	}
	customers := &fakeCustomerRepo{}
	catalog := &fakeCatalogRepo{offering: offering()}

	uc := NewUseCase(bookings, customers, catalog, &fakeTxManager{}, nil, nopLogger{})

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrScheduleConflict)

	// Nothing is written when the slot is held.
	assert.Nil(t, customers.created)
	assert.Nil(t, bookings.created)
}

func TestExecute_CancelledBookingFreesSlot(t *testing.T) {
	// The repository query excludes cancelled holders; an empty result
	// means the slot is free even though a cancelled booking exists for
	// it. Modeled here as the fake returning no holders.
	bookings := &fakeBookingRepo{nextID: 1002}
	catalog := &fakeCatalogRepo{offering: offering()}

	uc := NewUseCase(bookings, &fakeCustomerRepo{}, catalog, &fakeTxManager{}, nil, nopLogger{})

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Equal(t, int64(1002), resp.ID)
}

func TestExecute_OfferingNotFound(t *testing.T) {
	customers := &fakeCustomerRepo{}
	catalog := &fakeCatalogRepo{err: catalogRepo.ErrOfferingNotFound}

	uc := NewUseCase(&fakeBookingRepo{}, customers, catalog, &fakeTxManager{}, nil, nopLogger{})

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrOfferingNotFound)

	// The offering lookup aborts before any customer row is written.
	assert.Nil(t, customers.created)
}

func TestExecute_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Request)
	}{
		{"empty account", func(r *Request) { r.AccountID = "  " }},
		{"empty name", func(r *Request) { r.CustomerName = "" }},
		{"empty email", func(r *Request) { r.CustomerEmail = "\t" }},
		{"empty phone", func(r *Request) { r.CustomerPhone = "" }},
		{"zero service id", func(r *Request) { r.ServiceID = 0 }},
		{"zero date", func(r *Request) { r.Date = time.Time{} }},
		{"lunch break slot", func(r *Request) { r.TimeSlot = "12:00" }},
		{"off-grid slot", func(r *Request) { r.TimeSlot = "09:30" }},
		{"oversized note", func(r *Request) {
			r.Note = ptr.Ptr(strings.Repeat("x", domain.MaxNoteLength+1))
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bookings := &fakeBookingRepo{}
			customers := &fakeCustomerRepo{}
			tx := &fakeTxManager{}
			uc := NewUseCase(bookings, customers, &fakeCatalogRepo{offering: offering()}, tx, nil, nopLogger{})

			req := validRequest()
			tt.mutate(req)

			_, err := uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidInput)

			// Validation failures never reach storage.
			assert.Equal(t, 0, tx.calls)
			assert.Nil(t, customers.created)
			assert.Nil(t, bookings.created)
		})
	}
}

func TestExecute_TrimsNote(t *testing.T) {
	bookings := &fakeBookingRepo{nextID: 1001}
	uc := NewUseCase(bookings, &fakeCustomerRepo{}, &fakeCatalogRepo{offering: offering()}, &fakeTxManager{}, nil, nopLogger{})

	req := validRequest()
	req.Note = ptr.Ptr("  tolong datang tepat waktu  ")

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	require.NotNil(t, resp.Note)
	assert.Equal(t, "tolong datang tepat waktu", *resp.Note)
}

func TestExecute_CacheInvalidationFailureIsNonFatal(t *testing.T) {
	cache := &fakeInvalidator{err: errors.New("redis down")}
	uc := NewUseCase(&fakeBookingRepo{nextID: 1001}, &fakeCustomerRepo{}, &fakeCatalogRepo{offering: offering()}, &fakeTxManager{}, cache, nopLogger{})

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Equal(t, int64(1001), resp.ID)
	assert.Equal(t, 1, cache.calls)
}
