package middleware

import (
	"context"
	"net/http"

	"github.com/bookingjasa/booking-service/internal/api/handlers"
	"github.com/bookingjasa/booking-service/internal/domain"
)

// Identity headers set by the authentication gate in front of this
// service. The gate has already verified credentials; handlers only
// see the resulting account id and role.
const (
	HeaderAccountID   = "X-Account-ID"
	HeaderAccountRole = "X-Account-Role"
)

type actorContextKey struct{}

// Auth requires the identity headers and stores the actor in the
// request context. A missing or malformed identity yields 401.
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		accountID := r.Header.Get(HeaderAccountID)
		if accountID == "" {
			handlers.RespondUnauthorized(w, "missing account identity")
			return
		}

		role := domain.Role(r.Header.Get(HeaderAccountRole))
		if role == "" {
			role = domain.RoleUser
		}
		if !role.Valid() {
			handlers.RespondUnauthorized(w, "unknown account role")
			return
		}

		actor := domain.Actor{AccountID: accountID, Role: role}
		ctx := context.WithValue(r.Context(), actorContextKey{}, actor)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireAdmin rejects non-admin actors before the handler runs.
// Must be applied after Auth.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		actor, ok := ActorFromContext(r.Context())
		if !ok {
			handlers.RespondUnauthorized(w, "missing account identity")
			return
		}
		if !actor.IsAdmin() {
			handlers.RespondForbidden(w, "admin role required")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// ActorFromContext returns the actor stored by Auth.
func ActorFromContext(ctx context.Context) (domain.Actor, bool) {
	actor, ok := ctx.Value(actorContextKey{}).(domain.Actor)
	return actor, ok
}
