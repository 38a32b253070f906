package submit_payment

// Request is the submit-payment input model.
type Request struct {
	BookingID   int64
	AccountID   string // acting account; must own the booking
	EvidenceRef string // opaque reference from the blob store
}

// Response reports the booking after the payment submission.
type Response struct {
	BookingID     int64
	Status        string
	PaymentMethod string
	AmountDue     int64
	EvidenceRef   string
}
