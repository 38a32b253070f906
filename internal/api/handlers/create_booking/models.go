package create_booking

import (
	"errors"
	"fmt"
	"time"

	"github.com/bookingjasa/booking-service/internal/domain"
	createBooking "github.com/bookingjasa/booking-service/internal/usecase/create_booking"
	"github.com/bookingjasa/booking-service/pkg/types"
)

var (
	errInvalidDate     = errors.New("invalid booking date")
	errInvalidTimeSlot = errors.New("invalid time slot")
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	CustomerName  string  `json:"customerName"`
	CustomerEmail string  `json:"customerEmail"`
	CustomerPhone string  `json:"customerPhone"`
	ServiceID     int64   `json:"serviceId"`
	BookingDate   string  `json:"bookingDate"` // "2025-10-15"
	TimeSlot      string  `json:"timeSlot"`    // "10:00"
	Note          *string `json:"note,omitempty"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID              int64   `json:"id"`
	CustomerID      int64   `json:"customerId"`
	ServiceID       int64   `json:"serviceId"`
	BookingDate     string  `json:"bookingDate"`
	TimeSlot        string  `json:"timeSlot"`
	Status          string  `json:"status"`
	PaymentMethod   string  `json:"paymentMethod"`
	AmountDue       int64   `json:"amountDue"`
	EvidenceRef     string  `json:"evidenceRef"`
	ServiceName     string  `json:"serviceName"`
	ServiceCategory string  `json:"serviceCategory"`
	ServicePrice    int64   `json:"servicePrice"`
	DurationMinutes int     `json:"durationMinutes"`
	CustomerName    string  `json:"customerName"`
	CustomerEmail   string  `json:"customerEmail"`
	CustomerPhone   string  `json:"customerPhone"`
	AccountID       string  `json:"accountId"`
	Note            *string `json:"note,omitempty"`
	CreatedAt       string  `json:"createdAt"`
	UpdatedAt       string  `json:"updatedAt"`
}

// ToUseCaseRequest converts the HTTP request into the use case model,
// parsing the date and slot strings.
func (r *CreateBookingRequest) ToUseCaseRequest(accountID string) (*createBooking.Request, error) {
	bookingDate, err := time.Parse(domain.DateFormat, r.BookingDate)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errInvalidDate, err)
	}

	timeSlot, err := types.NewTimeStringFromString(r.TimeSlot)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errInvalidTimeSlot, err)
	}

	return &createBooking.Request{
		AccountID:     accountID,
		CustomerName:  r.CustomerName,
		CustomerEmail: r.CustomerEmail,
		CustomerPhone: r.CustomerPhone,
		ServiceID:     r.ServiceID,
		Date:          bookingDate,
		TimeSlot:      timeSlot,
		Note:          r.Note,
	}, nil
}

// FromUseCaseResponse converts the use case response into the HTTP model.
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:              resp.ID,
		CustomerID:      resp.CustomerID,
		ServiceID:       resp.ServiceID,
		BookingDate:     resp.BookingDate.Format(domain.DateFormat),
		TimeSlot:        resp.TimeSlot.String(),
		Status:          resp.Status,
		PaymentMethod:   resp.PaymentMethod,
		AmountDue:       resp.AmountDue,
		EvidenceRef:     resp.EvidenceRef,
		ServiceName:     resp.ServiceName,
		ServiceCategory: resp.ServiceCategory,
		ServicePrice:    resp.ServicePrice,
		DurationMinutes: resp.DurationMinutes,
		CustomerName:    resp.CustomerName,
		CustomerEmail:   resp.CustomerEmail,
		CustomerPhone:   resp.CustomerPhone,
		AccountID:       resp.AccountID,
		Note:            resp.Note,
		CreatedAt:       resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       resp.UpdatedAt.Format(time.RFC3339),
	}
}
