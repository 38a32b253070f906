package export_bookings

import (
	"errors"
	"fmt"
	"net/http"
	"time"

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

// Handle GET /api/v1/bookings/export?format=csv
//
// format=json returns the raw summary rows instead of a CSV attachment.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.ActorFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, "missing account identity")
		return
	}

	if r.URL.Query().Get("format") == "json" {
		summaries, err := h.service.Summaries(r.Context(), actor)
		if err != nil {
			h.respondError(w, actor.AccountID, err)
			return
		}
		handlers.RespondJSON(w, http.StatusOK, summaries)
		return
	}

	data, err := h.service.ExportCSV(r.Context(), actor)
	if err != nil {
		h.respondError(w, actor.AccountID, err)
		return
	}

	filename := fmt.Sprintf("bookings-%s.csv", time.Now().Format("20060102-150405"))
	h.logger.Info("GET /bookings/export - Exported by account=%s", actor.AccountID)
	handlers.RespondCSV(w, filename, data)
}

func (h *Handler) respondError(w http.ResponseWriter, accountID string, err error) {
	switch {
	case errors.Is(err, bookings.ErrAccessDenied):
		h.logger.Warn("GET /bookings/export - Access denied for account=%s", accountID)
		handlers.RespondForbidden(w, msgAccessDenied)
	default:
		h.logger.Error("GET /bookings/export - Failed: error=%v", err)
		handlers.RespondInternalError(w)
	}
}
