package list_bookings

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/bookingjasa/booking-service/internal/api/handlers"
	"github.com/bookingjasa/booking-service/internal/api/middleware"
	"github.com/bookingjasa/booking-service/internal/service/bookings"
	"github.com/bookingjasa/booking-service/internal/service/bookings/models"
	"github.com/bookingjasa/booking-service/pkg/ptr"
)

const (
	msgAccessDenied     = "access denied"
	msgInvalidStatus    = "invalid status filter"
	msgInvalidServiceID = "invalid service id filter"
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

// Handle GET /api/v1/bookings?accountId=&serviceId=&status=&includeCancelled=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.ActorFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, "missing account identity")
		return
	}

	query := r.URL.Query()
	req := &models.ListBookingsRequest{
		IncludeCancelled: query.Get("includeCancelled") == "true",
	}
	if accountID := query.Get("accountId"); accountID != "" {
		req.AccountID = ptr.Ptr(accountID)
	}
	if serviceID := query.Get("serviceId"); serviceID != "" {
		id, err := strconv.ParseInt(serviceID, 10, 64)
		if err != nil || id <= 0 {
			handlers.RespondBadRequest(w, msgInvalidServiceID)
			return
		}
		req.ServiceID = ptr.Ptr(id)
	}
	if status := query.Get("status"); status != "" {
		req.Status = ptr.Ptr(status)
	}

	result, err := h.service.ListAll(r.Context(), actor, req)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrAccessDenied):
			h.logger.Warn("GET /bookings - Access denied for account=%s", actor.AccountID)
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, bookings.ErrInvalidStatus):
			handlers.RespondBadRequest(w, msgInvalidStatus)

		default:
			h.logger.Error("GET /bookings - Failed: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
