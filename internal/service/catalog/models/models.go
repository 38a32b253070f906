package models

import (
	"time"

	"github.com/bookingjasa/booking-service/internal/domain"
)

// AddOfferingRequest describes a new catalog entry.
type AddOfferingRequest struct {
	Name            string `json:"name"`
	Category        string `json:"category"`
	Price           int64  `json:"price"`
	DurationMinutes int    `json:"durationMinutes"`
}

// OfferingResponse is the outward representation of an offering.
type OfferingResponse struct {
	ID              int64  `json:"id"`
	Name            string `json:"name"`
	Category        string `json:"category"`
	Price           int64  `json:"price"`
	DurationMinutes int    `json:"durationMinutes"`
	CreatedAt       string `json:"createdAt"`
}

// OfferingListResponse wraps a list of offerings.
type OfferingListResponse struct {
	Offerings []*OfferingResponse `json:"offerings"`
	Total     int                 `json:"total"`
}

// FromDomainOffering converts a domain offering to the response model.
func FromDomainOffering(o *domain.ServiceOffering) *OfferingResponse {
	return &OfferingResponse{
		ID:              o.ID,
		Name:            o.Name,
		Category:        o.Category,
		Price:           o.Price,
		DurationMinutes: o.DurationMinutes,
		CreatedAt:       o.CreatedAt.Format(time.RFC3339),
	}
}

// FromDomainOfferingList converts a list of domain offerings.
func FromDomainOfferingList(offerings []*domain.ServiceOffering) *OfferingListResponse {
	out := make([]*OfferingResponse, 0, len(offerings))
	for _, o := range offerings {
		out = append(out, FromDomainOffering(o))
	}
	return &OfferingListResponse{Offerings: out, Total: len(out)}
}
