package submit_payment

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bookingjasa/booking-service/internal/domain"
	bookingRepo "github.com/bookingjasa/booking-service/internal/infra/storage/booking"
)

// Fakes

type fakeBookingRepo struct {
	booking *domain.Booking
	getErr  error

	updatedID       int64
	updatedMethod   string
	updatedAmount   int64
	updatedEvidence string
	updatedStatus   domain.BookingStatus
	updateErr       error
}

func (f *fakeBookingRepo) GetByID(context.Context, int64) (*domain.Booking, error) {
	return f.booking, f.getErr
}

func (f *fakeBookingRepo) UpdatePayment(_ context.Context, id int64, method string, amountDue int64, evidenceRef string, status domain.BookingStatus) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	f.updatedID = id
	f.updatedMethod = method
	f.updatedAmount = amountDue
	f.updatedEvidence = evidenceRef
	f.updatedStatus = status
	return nil
}

type fakeCatalogRepo struct {
	offering *domain.ServiceOffering
	err      error
}

func (f *fakeCatalogRepo) GetByID(context.Context, int64) (*domain.ServiceOffering, error) {
	return f.offering, f.err
}

type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakeInvalidator struct{ calls int }

func (f *fakeInvalidator) Invalidate(context.Context) error {
	f.calls++
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func ownedBooking() *domain.Booking {
	return &domain.Booking{
		ID:           1001,
		ServiceID:    3,
		AccountID:    "budi",
		Status:       domain.StatusPending,
		ServicePrice: 500000,
		AmountDue:    500000,
	}
}

func TestExecute_Success(t *testing.T) {
	bookings := &fakeBookingRepo{booking: ownedBooking()}
	// The catalog price has changed since the booking was created.
	catalog := &fakeCatalogRepo{offering: &domain.ServiceOffering{ID: 3, Price: 550000}}
	cache := &fakeInvalidator{}

	uc := NewUseCase(bookings, catalog, fakeTxManager{}, cache, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		BookingID:   1001,
		AccountID:   "budi",
		EvidenceRef: "blob-42",
	})
	require.NoError(t, err)

	assert.Equal(t, string(domain.StatusPendingVerification), resp.Status)
	assert.Equal(t, domain.PaymentMethodDeclared, resp.PaymentMethod)
	assert.Equal(t, "blob-42", resp.EvidenceRef)

	// The amount due is re-read from the catalog at submission time;
	// the price captured at creation stays on the booking row.
	assert.Equal(t, int64(550000), resp.AmountDue)
	assert.Equal(t, int64(550000), bookings.updatedAmount)

	assert.Equal(t, domain.StatusPendingVerification, bookings.updatedStatus)
	assert.Equal(t, 1, cache.calls)
}

func TestExecute_ResubmissionOverwrites(t *testing.T) {
	// Submitting again on a pending_verification booking is allowed;
	// the transition is unconditional and the new evidence wins.
	b := ownedBooking()
	b.Status = domain.StatusPendingVerification
	b.EvidenceRef = "blob-41"

	bookings := &fakeBookingRepo{booking: b}
	catalog := &fakeCatalogRepo{offering: &domain.ServiceOffering{ID: 3, Price: 500000}}

	uc := NewUseCase(bookings, catalog, fakeTxManager{}, nil, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		BookingID:   1001,
		AccountID:   "budi",
		EvidenceRef: "blob-42",
	})
	require.NoError(t, err)
	assert.Equal(t, "blob-42", resp.EvidenceRef)
	assert.Equal(t, "blob-42", bookings.updatedEvidence)
}

func TestExecute_NotOwner(t *testing.T) {
	bookings := &fakeBookingRepo{booking: ownedBooking()}
	catalog := &fakeCatalogRepo{offering: &domain.ServiceOffering{ID: 3, Price: 500000}}

	uc := NewUseCase(bookings, catalog, fakeTxManager{}, nil, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		BookingID:   1001,
		AccountID:   "siti",
		EvidenceRef: "blob-42",
	})
	assert.ErrorIs(t, err, ErrAccessDenied)
	assert.Zero(t, bookings.updatedID)
}

func TestExecute_BookingNotFound(t *testing.T) {
	bookings := &fakeBookingRepo{getErr: bookingRepo.ErrBookingNotFound}
	uc := NewUseCase(bookings, &fakeCatalogRepo{}, fakeTxManager{}, nil, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		BookingID:   9999,
		AccountID:   "budi",
		EvidenceRef: "blob-42",
	})
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestExecute_InvalidInput(t *testing.T) {
	tests := []struct {
		name string
		req  *Request
	}{
		{"blank evidence", &Request{BookingID: 1001, AccountID: "budi", EvidenceRef: "   "}},
		{"zero booking id", &Request{BookingID: 0, AccountID: "budi", EvidenceRef: "blob-42"}},
		{"blank account", &Request{BookingID: 1001, AccountID: " ", EvidenceRef: "blob-42"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bookings := &fakeBookingRepo{booking: ownedBooking()}
			uc := NewUseCase(bookings, &fakeCatalogRepo{}, fakeTxManager{}, nil, nopLogger{})

			_, err := uc.Execute(context.Background(), tt.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
			assert.Zero(t, bookings.updatedID)
		})
	}
}
