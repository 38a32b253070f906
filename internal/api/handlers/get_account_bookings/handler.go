package get_account_bookings

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/bookingjasa/booking-service/internal/api/handlers"
	"github.com/bookingjasa/booking-service/internal/api/middleware"
	"github.com/bookingjasa/booking-service/internal/service/bookings"
	"github.com/bookingjasa/booking-service/internal/service/bookings/models"
	"github.com/bookingjasa/booking-service/pkg/ptr"
)

const (
	msgAccessDenied  = "access denied"
	msgInvalidStatus = "invalid status filter"
)

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

// Handle GET /api/v1/accounts/{accountId}/bookings?status=pending
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.ActorFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, "missing account identity")
		return
	}

	req := &models.GetAccountBookingsRequest{
		AccountID: mux.Vars(r)["accountId"],
	}
	if status := r.URL.Query().Get("status"); status != "" {
		req.Status = ptr.Ptr(status)
	}

	result, err := h.service.GetAccountBookings(r.Context(), actor, req)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrAccessDenied):
			h.logger.Warn("GET /accounts/%s/bookings - Access denied for account=%s", req.AccountID, actor.AccountID)
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, bookings.ErrInvalidStatus):
			handlers.RespondBadRequest(w, msgInvalidStatus)

		case errors.Is(err, bookings.ErrInvalidInput):
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("GET /accounts/%s/bookings - Failed: error=%v", req.AccountID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
