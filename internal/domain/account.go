package domain

import "time"

// Role is the authorization role of an account.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

// Valid reports whether r is a known role.
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleUser
}

// Account maps a login identifier to credentials and a role. The
// authentication gate in front of this service consults it; API
// handlers only see the resulting (account id, role) identity.
type Account struct {
	Username  string
	Password  string
	Role      Role
	CreatedAt time.Time
}

// IsAdmin reports whether the account has the admin role.
func (a *Account) IsAdmin() bool {
	return a.Role == RoleAdmin
}

// Actor is the authenticated identity performing an operation, as
// supplied by the external auth gate. Every operation entry point
// checks the actor's capability explicitly instead of relying on any
// menu or routing structure.
type Actor struct {
	AccountID string
	Role      Role
}

// IsAdmin reports whether the actor has the admin role.
func (a Actor) IsAdmin() bool {
	return a.Role == RoleAdmin
}
