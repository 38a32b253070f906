package domain

import (
	"time"

	"github.com/bookingjasa/booking-service/pkg/types"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending             BookingStatus = "pending"
	StatusPendingVerification BookingStatus = "pending_verification"
	StatusApproved            BookingStatus = "approved"
	StatusRejected            BookingStatus = "rejected"
	StatusCancelled           BookingStatus = "cancelled"
)

// AllStatuses lists every valid booking status.
var AllStatuses = []BookingStatus{
	StatusPending,
	StatusPendingVerification,
	StatusApproved,
	StatusRejected,
	StatusCancelled,
}

// Valid reports whether s is one of the enumerated statuses.
func (s BookingStatus) Valid() bool {
	for _, known := range AllStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// Booking represents one reservation of a service offering for a
// specific date and time slot.
type Booking struct {
	ID         int64
	CustomerID int64
	ServiceID  int64

	BookingDate time.Time
	TimeSlot    types.TimeString
	Note        *string
	Status      BookingStatus

	// Payment record. AmountDue is captured from the offering price at
	// creation and overwritten with the offering's current price when
	// payment evidence is submitted.
	PaymentMethod string
	AmountDue     int64
	EvidenceRef   string

	// Denormalized data for history and the summary projection.
	// ServicePrice keeps the price as it was at booking time even if
	// the catalog entry changes later.
	ServiceName     string
	ServiceCategory string
	ServicePrice    int64
	DurationMinutes int
	CustomerName    string
	CustomerEmail   string
	CustomerPhone   string
	AccountID       string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsCancelled returns true if the booking has been cancelled
func (b *Booking) IsCancelled() bool {
	return b.Status == StatusCancelled
}

// OccupiesSlot reports whether the booking blocks its (service, date,
// slot) combination. Cancelled bookings free the slot.
func (b *Booking) OccupiesSlot() bool {
	return b.Status != StatusCancelled
}

// HasPaymentEvidence reports whether payment evidence was submitted.
func (b *Booking) HasPaymentEvidence() bool {
	return b.EvidenceRef != EvidenceRefNone && b.EvidenceRef != ""
}

// BookingsFilter describes an administrative booking listing
type BookingsFilter struct {
	AccountID        *string           // owner account, nil = all accounts
	ServiceID        *int64            // nil = all offerings
	Status           *BookingStatus    // nil = all statuses
	Date             *time.Time        // nil = all dates
	TimeSlot         *types.TimeString // nil = all slots
	IncludeCancelled bool              // include cancelled bookings in the result
}

// BookingStats is the aggregate counters row shown on the dashboard.
type BookingStats struct {
	Total               int64 `json:"total"`
	Pending             int64 `json:"pending"`
	PendingVerification int64 `json:"pendingVerification"`
	Approved            int64 `json:"approved"`
}
