package domain

import "github.com/bookingjasa/booking-service/pkg/types"

// Payment defaults and labels
const (
	// PaymentMethodNone is the payment method of a booking before any
	// evidence is submitted.
	PaymentMethodNone = "none"

	// PaymentMethodDeclared is the declared payment method recorded
	// when the customer submits evidence.
	PaymentMethodDeclared = "QRIS"

	// EvidenceRefNone marks a booking without submitted payment evidence.
	EvidenceRefNone = "none"
)

// Identity constants
const (
	// BookingIDStart is the first booking id the store hands out.
	BookingIDStart = 1001
)

// Business validation constants
const (
	MinOfferingDurationMinutes = 10
	MaxNoteLength              = 500
	MinPasswordLength          = 4
)

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// TimeSlots is the fixed set of bookable slot labels. Bookings may only
// be placed on one of these.
var TimeSlots = []types.TimeString{
	"09:00", "10:00", "11:00",
	"13:00", "14:00", "15:00", "16:00",
	"19:00", "20:00",
}

// ValidTimeSlot reports whether ts is one of the bookable slot labels.
func ValidTimeSlot(ts types.TimeString) bool {
	for _, slot := range TimeSlots {
		if ts == slot {
			return true
		}
	}
	return false
}
