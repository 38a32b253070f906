package models

import (
	"time"

	"github.com/bookingjasa/booking-service/internal/domain"
)

// RegisterRequest describes a self-service registration.
type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// AuthenticateRequest is a username/password check performed by the
// auth gate in front of this service.
type AuthenticateRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// AccountResponse is the outward representation of an account.
// Credentials never leave the service.
type AccountResponse struct {
	Username  string `json:"username"`
	Role      string `json:"role"`
	CreatedAt string `json:"createdAt"`
}

// FromDomainAccount converts a domain account to the response model.
func FromDomainAccount(a *domain.Account) *AccountResponse {
	return &AccountResponse{
		Username:  a.Username,
		Role:      string(a.Role),
		CreatedAt: a.CreatedAt.Format(time.RFC3339),
	}
}
