package models

import (
	"errors"
	"time"

	"github.com/bookingjasa/booking-service/internal/domain"
)

// ErrInvalidStatus is returned when a status string is outside the
// enumerated set.
var ErrInvalidStatus = errors.New("invalid booking status")

// Request models

// GetAccountBookingsRequest asks for one account's booking history.
type GetAccountBookingsRequest struct {
	AccountID string  `json:"accountId"`
	Status    *string `json:"status,omitempty"`
}

// ListBookingsRequest is the administrative listing filter.
type ListBookingsRequest struct {
	AccountID        *string `json:"accountId,omitempty"`
	ServiceID        *int64  `json:"serviceId,omitempty"`
	Status           *string `json:"status,omitempty"`
	IncludeCancelled bool    `json:"includeCancelled"`
}

// UpdateStatusRequest is the administrative status override.
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// Response models

// BookingResponse is the outward representation of a booking.
type BookingResponse struct {
	ID         int64 `json:"id"`
	CustomerID int64 `json:"customerId"`
	ServiceID  int64 `json:"serviceId"`

	BookingDate string  `json:"bookingDate"`
	TimeSlot    string  `json:"timeSlot"`
	Note        *string `json:"note,omitempty"`
	Status      string  `json:"status"`

	PaymentMethod string `json:"paymentMethod"`
	AmountDue     int64  `json:"amountDue"`
	EvidenceRef   string `json:"evidenceRef"`

	ServiceName     string `json:"serviceName"`
	ServiceCategory string `json:"serviceCategory"`
	ServicePrice    int64  `json:"servicePrice"`
	DurationMinutes int    `json:"durationMinutes"`
	CustomerName    string `json:"customerName"`
	CustomerEmail   string `json:"customerEmail"`
	CustomerPhone   string `json:"customerPhone"`
	AccountID       string `json:"accountId"`

	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

// BookingListResponse wraps a list of bookings.
type BookingListResponse struct {
	Bookings []*BookingResponse `json:"bookings"`
	Total    int                `json:"total"`
}

// ToDomainBookingStatus validates and converts a status string.
func ToDomainBookingStatus(s string) (domain.BookingStatus, error) {
	status := domain.BookingStatus(s)
	if !status.Valid() {
		return "", ErrInvalidStatus
	}
	return status, nil
}

// FromDomainBooking converts a domain booking to the response model.
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	return &BookingResponse{
		ID:              b.ID,
		CustomerID:      b.CustomerID,
		ServiceID:       b.ServiceID,
		BookingDate:     b.BookingDate.Format(domain.DateFormat),
		TimeSlot:        b.TimeSlot.String(),
		Note:            b.Note,
		Status:          string(b.Status),
		PaymentMethod:   b.PaymentMethod,
		AmountDue:       b.AmountDue,
		EvidenceRef:     b.EvidenceRef,
		ServiceName:     b.ServiceName,
		ServiceCategory: b.ServiceCategory,
		ServicePrice:    b.ServicePrice,
		DurationMinutes: b.DurationMinutes,
		CustomerName:    b.CustomerName,
		CustomerEmail:   b.CustomerEmail,
		CustomerPhone:   b.CustomerPhone,
		AccountID:       b.AccountID,
		CreatedAt:       b.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       b.UpdatedAt.Format(time.RFC3339),
	}
}

// FromDomainBookingList converts a list of domain bookings.
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	out := make([]*BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, FromDomainBooking(b))
	}
	return &BookingListResponse{Bookings: out, Total: len(out)}
}
