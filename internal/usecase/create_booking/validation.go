package create_booking

import (
	"fmt"
	"strings"

	"github.com/bookingjasa/booking-service/internal/domain"
)

// normalizeRequest trims the submitted strings in place.
func normalizeRequest(req *Request) {
	req.AccountID = strings.TrimSpace(req.AccountID)
	req.CustomerName = strings.TrimSpace(req.CustomerName)
	req.CustomerEmail = strings.TrimSpace(req.CustomerEmail)
	req.CustomerPhone = strings.TrimSpace(req.CustomerPhone)
	if req.Note != nil {
		trimmed := strings.TrimSpace(*req.Note)
		req.Note = &trimmed
	}
}

// validateRequest checks the request after normalization. Runs before
// any storage access, so a validation failure performs no mutation.
func validateRequest(req *Request) error {
	if req.AccountID == "" {
		return fmt.Errorf("%w: accountID is required", ErrInvalidInput)
	}
	if req.CustomerName == "" {
		return fmt.Errorf("%w: customer name is required", ErrInvalidInput)
	}
	if req.CustomerEmail == "" {
		return fmt.Errorf("%w: customer email is required", ErrInvalidInput)
	}
	if req.CustomerPhone == "" {
		return fmt.Errorf("%w: customer phone is required", ErrInvalidInput)
	}
	if req.ServiceID <= 0 {
		return fmt.Errorf("%w: serviceID must be positive", ErrInvalidInput)
	}
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	if !domain.ValidTimeSlot(req.TimeSlot) {
		return fmt.Errorf("%w: timeSlot %q is not a bookable slot", ErrInvalidInput, req.TimeSlot)
	}
	if req.Note != nil && len(*req.Note) > domain.MaxNoteLength {
		return fmt.Errorf("%w: note exceeds %d characters", ErrInvalidInput, domain.MaxNoteLength)
	}
	return nil
}
