package domain

import "time"

// ServiceOffering is a purchasable service definition in the catalog.
// Offerings are append-only: there is no edit or delete operation, and
// a new id is always one greater than the current maximum.
type ServiceOffering struct {
	ID              int64
	Name            string
	Category        string
	Price           int64 // smallest currency unit
	DurationMinutes int
	CreatedAt       time.Time
}
