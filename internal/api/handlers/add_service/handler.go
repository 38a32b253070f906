package add_service

import (
	"errors"
	"net/http"

	"github.com/bookingjasa/booking-service/internal/api/handlers"
	"github.com/bookingjasa/booking-service/internal/api/middleware"
	"github.com/bookingjasa/booking-service/internal/service/catalog"
	"github.com/bookingjasa/booking-service/internal/service/catalog/models"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgAccessDenied       = "access denied"
)

type Handler struct {
	service CatalogService
	logger  Logger
}

func NewHandler(service CatalogService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/services
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.ActorFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, "missing account identity")
		return
	}

	var req models.AddOfferingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /services - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Add(r.Context(), actor, &req)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrAccessDenied):
			h.logger.Warn("POST /services - Access denied for account=%s", actor.AccountID)
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, catalog.ErrInvalidInput):
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /services - Failed: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /services - Offering created: id=%d, name=%q, account=%s", result.ID, result.Name, actor.AccountID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
