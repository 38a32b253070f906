package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bookingjasa/booking-service/internal/domain"
)

func TestAuth(t *testing.T) {
	var captured domain.Actor
	var called bool

	handler := Auth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		actor, ok := ActorFromContext(r.Context())
		require.True(t, ok)
		captured = actor
	}))

	t.Run("valid identity", func(t *testing.T) {
		called = false
		req := httptest.NewRequest(http.MethodGet, "/bookings/1001", nil)
		req.Header.Set(HeaderAccountID, "budi")
		req.Header.Set(HeaderAccountRole, "user")
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.True(t, called)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, domain.Actor{AccountID: "budi", Role: domain.RoleUser}, captured)
	})

	t.Run("role defaults to user", func(t *testing.T) {
		called = false
		req := httptest.NewRequest(http.MethodGet, "/bookings/1001", nil)
		req.Header.Set(HeaderAccountID, "budi")
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.True(t, called)
		assert.Equal(t, domain.RoleUser, captured.Role)
	})

	t.Run("missing account id", func(t *testing.T) {
		called = false
		req := httptest.NewRequest(http.MethodGet, "/bookings/1001", nil)
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.False(t, called)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("unknown role", func(t *testing.T) {
		called = false
		req := httptest.NewRequest(http.MethodGet, "/bookings/1001", nil)
		req.Header.Set(HeaderAccountID, "budi")
		req.Header.Set(HeaderAccountRole, "superuser")
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.False(t, called)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestRequireAdmin(t *testing.T) {
	var called bool
	handler := Auth(RequireAdmin(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	})))

	t.Run("admin passes", func(t *testing.T) {
		called = false
		req := httptest.NewRequest(http.MethodGet, "/bookings/stats", nil)
		req.Header.Set(HeaderAccountID, "admin")
		req.Header.Set(HeaderAccountRole, "admin")
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.True(t, called)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("user is rejected", func(t *testing.T) {
		called = false
		req := httptest.NewRequest(http.MethodGet, "/bookings/stats", nil)
		req.Header.Set(HeaderAccountID, "budi")
		req.Header.Set(HeaderAccountRole, "user")
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.False(t, called)
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})
}

func TestRequestID(t *testing.T) {
	handler := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := RequestIDFromContext(r.Context())
		assert.True(t, ok)
		assert.NotEmpty(t, id)
	}))

	t.Run("generated when absent", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/services", nil)
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.NotEmpty(t, rec.Header().Get(HeaderRequestID))
	})

	t.Run("caller id is honored", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/services", nil)
		req.Header.Set(HeaderRequestID, "req-123")
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Equal(t, "req-123", rec.Header().Get(HeaderRequestID))
	})
}
