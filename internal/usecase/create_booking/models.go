package create_booking

import (
	"time"

	"github.com/bookingjasa/booking-service/pkg/types"
)

// Request is the create-booking input model.
type Request struct {
	AccountID     string           // authenticated account placing the booking
	CustomerName  string           // contact details submitted with the booking
	CustomerEmail string
	CustomerPhone string
	ServiceID     int64            // offering being booked
	Date          time.Time        // requested calendar date
	TimeSlot      types.TimeString // one of the fixed slot labels
	Note          *string          // optional free-text note
}

// Response is the created booking.
type Response struct {
	ID         int64
	CustomerID int64
	ServiceID  int64

	BookingDate time.Time
	TimeSlot    types.TimeString
	Note        *string
	Status      string

	PaymentMethod string
	AmountDue     int64
	EvidenceRef   string

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
