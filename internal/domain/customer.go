package domain

import "time"

// Customer records the contact details submitted with a booking,
// linked to the account that created it. One customer row is created
// per booking submission; rows are never mutated or deleted.
type Customer struct {
	ID        int64
	Name      string
	Email     string
	Phone     string
	AccountID string
	CreatedAt time.Time
}
