package booking_stats

import (
	"errors"
	"net/http"

	"github.com/bookingjasa/booking-service/internal/api/handlers"
	"github.com/bookingjasa/booking-service/internal/api/middleware"
	"github.com/bookingjasa/booking-service/internal/service/bookings"
)

const msgAccessDenied = "access denied"

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/bookings/stats
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.ActorFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, "missing account identity")
		return
	}

	stats, err := h.service.Stats(r.Context(), actor)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrAccessDenied):
			h.logger.Warn("GET /bookings/stats - Access denied for account=%s", actor.AccountID)
			handlers.RespondForbidden(w, msgAccessDenied)

		default:
			h.logger.Error("GET /bookings/stats - Failed: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, stats)
}
