package domain

// BookingSummary is the flat tabular projection of a booking consumed
// by the reporting/export surface. Its field set is a contract other
// components depend on; do not drop or rename columns.
type BookingSummary struct {
	BookingID       int64  `json:"bookingId"`
	Date            string `json:"date"`
	TimeSlot        string `json:"timeSlot"`
	Status          string `json:"status"`
	ServiceName     string `json:"serviceName"`
	ServiceCategory string `json:"serviceCategory"`
	ServicePrice    int64  `json:"servicePrice"`
	DurationMinutes int    `json:"durationMinutes"`
	CustomerName    string `json:"customerName"`
	CustomerEmail   string `json:"customerEmail"`
	CustomerPhone   string `json:"customerPhone"`
	AccountID       string `json:"accountId"`
	PaymentMethod   string `json:"paymentMethod"`
	AmountDue       int64  `json:"amountDue"`
	EvidenceRef     string `json:"evidenceRef"`
	Note            string `json:"note"`
}

// Summarize builds the summary projection for a booking.
func Summarize(b *Booking) BookingSummary {
	note := ""
	if b.Note != nil {
		note = *b.Note
	}
	return BookingSummary{
		BookingID:       b.ID,
		Date:            b.BookingDate.Format(DateFormat),
		TimeSlot:        b.TimeSlot.String(),
		Status:          string(b.Status),
		ServiceName:     b.ServiceName,
		ServiceCategory: b.ServiceCategory,
		ServicePrice:    b.ServicePrice,
		DurationMinutes: b.DurationMinutes,
		CustomerName:    b.CustomerName,
		CustomerEmail:   b.CustomerEmail,
		CustomerPhone:   b.CustomerPhone,
		AccountID:       b.AccountID,
		PaymentMethod:   b.PaymentMethod,
		AmountDue:       b.AmountDue,
		EvidenceRef:     b.EvidenceRef,
		Note:            note,
	}
}
