package register_account

import (
	"errors"
	"net/http"

	"github.com/bookingjasa/booking-service/internal/api/handlers"
	"github.com/bookingjasa/booking-service/internal/service/accounts"
	"github.com/bookingjasa/booking-service/internal/service/accounts/models"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgUsernameTaken      = "username already taken"
)

type Handler struct {
	service AccountService
	logger  Logger
}

func NewHandler(service AccountService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/accounts/register
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /accounts/register - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Register(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, accounts.ErrUsernameTaken):
			handlers.RespondConflict(w, msgUsernameTaken)

		case errors.Is(err, accounts.ErrInvalidInput):
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /accounts/register - Failed: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /accounts/register - Account %q registered", result.Username)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
