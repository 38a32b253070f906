package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/bookingjasa/booking-service/pkg/ptr"
)

func TestBookingStatus_Valid(t *testing.T) {
	for _, status := range AllStatuses {
		assert.True(t, status.Valid(), "status %q should be valid", status)
	}
	assert.False(t, BookingStatus("confirmed").Valid())
	assert.False(t, BookingStatus("").Valid())
}

func TestBooking_OccupiesSlot(t *testing.T) {
	tests := []struct {
		status BookingStatus
		want   bool
	}{
		{StatusPending, true},
		{StatusPendingVerification, true},
		{StatusApproved, true},
		{StatusRejected, true},
		{StatusCancelled, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			b := &Booking{Status: tt.status}
			assert.Equal(t, tt.want, b.OccupiesSlot())
			assert.Equal(t, tt.status == StatusCancelled, b.IsCancelled())
		})
	}
}

func TestBooking_HasPaymentEvidence(t *testing.T) {
	assert.False(t, (&Booking{EvidenceRef: EvidenceRefNone}).HasPaymentEvidence())
	assert.False(t, (&Booking{EvidenceRef: ""}).HasPaymentEvidence())
	assert.True(t, (&Booking{EvidenceRef: "blob-42"}).HasPaymentEvidence())
}

func TestValidTimeSlot(t *testing.T) {
	for _, slot := range TimeSlots {
		assert.True(t, ValidTimeSlot(slot), "slot %q should be bookable", slot)
	}
	// 12:00 is deliberately absent (lunch break), as is anything
	// outside the fixed labels.
	assert.False(t, ValidTimeSlot("12:00"))
	assert.False(t, ValidTimeSlot("09:30"))
	assert.False(t, ValidTimeSlot(""))
}

func TestSummarize(t *testing.T) {
	b := &Booking{
		ID:              1001,
		CustomerID:      1,
		ServiceID:       3,
		BookingDate:     time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC),
		TimeSlot:        "10:00",
		Note:            ptr.Ptr("bawa properti sendiri"),
		Status:          StatusPendingVerification,
		PaymentMethod:   PaymentMethodDeclared,
		AmountDue:       500000,
		EvidenceRef:     "blob-42",
		ServiceName:     "Fotografi Produk",
		ServiceCategory: "Kreatif",
		ServicePrice:    500000,
		DurationMinutes: 120,
		CustomerName:    "Budi",
		CustomerEmail:   "budi@example.com",
		CustomerPhone:   "0812345678",
		AccountID:       "budi",
	}

	sum := Summarize(b)

	assert.Equal(t, int64(1001), sum.BookingID)
	assert.Equal(t, "2025-10-15", sum.Date)
	assert.Equal(t, "10:00", sum.TimeSlot)
	assert.Equal(t, "pending_verification", sum.Status)
	assert.Equal(t, "Fotografi Produk", sum.ServiceName)
	assert.Equal(t, "Kreatif", sum.ServiceCategory)
	assert.Equal(t, int64(500000), sum.ServicePrice)
	assert.Equal(t, 120, sum.DurationMinutes)
	assert.Equal(t, "Budi", sum.CustomerName)
	assert.Equal(t, "budi@example.com", sum.CustomerEmail)
	assert.Equal(t, "0812345678", sum.CustomerPhone)
	assert.Equal(t, "budi", sum.AccountID)
	assert.Equal(t, "QRIS", sum.PaymentMethod)
	assert.Equal(t, int64(500000), sum.AmountDue)
	assert.Equal(t, "blob-42", sum.EvidenceRef)
	assert.Equal(t, "bawa properti sendiri", sum.Note)
}

func TestSummarize_NilNote(t *testing.T) {
	sum := Summarize(&Booking{BookingDate: time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC)})
	assert.Equal(t, "", sum.Note)
}

func TestActor_IsAdmin(t *testing.T) {
	assert.True(t, Actor{AccountID: "admin", Role: RoleAdmin}.IsAdmin())
	assert.False(t, Actor{AccountID: "budi", Role: RoleUser}.IsAdmin())
}
