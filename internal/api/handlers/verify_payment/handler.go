package verify_payment

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/bookingjasa/booking-service/internal/api/handlers"
	"github.com/bookingjasa/booking-service/internal/api/middleware"
	"github.com/bookingjasa/booking-service/internal/service/bookings"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidBookingID   = "invalid booking id"
	msgInvalidDecision    = "decision must be approve or reject"
	msgBookingNotFound    = "booking not found"
	msgAccessDenied       = "access denied"
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

// VerifyPaymentRequest HTTP request model
type VerifyPaymentRequest struct {
	Decision string `json:"decision"` // "approve" or "reject"
}

// Handle POST /api/v1/bookings/{bookingId}/verify-payment
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.ActorFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, "missing account identity")
		return
	}

	bookingID, err := strconv.ParseInt(mux.Vars(r)["bookingId"], 10, 64)
	if err != nil || bookingID <= 0 {
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	var req VerifyPaymentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings/%d/verify-payment - Invalid request body: %v", bookingID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	decision := bookings.Decision(req.Decision)
	if decision != bookings.DecisionApprove && decision != bookings.DecisionReject {
		handlers.RespondBadRequest(w, msgInvalidDecision)
		return
	}

	result, err := h.service.VerifyPayment(r.Context(), actor, bookingID, decision)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrAccessDenied):
			h.logger.Warn("POST /bookings/%d/verify-payment - Access denied for account=%s", bookingID, actor.AccountID)
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, bookings.ErrBookingNotFound):
			handlers.RespondNotFound(w, msgBookingNotFound)

		case errors.Is(err, bookings.ErrInvalidInput):
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /bookings/%d/verify-payment - Failed: error=%v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings/%d/verify-payment - Marked %s by account=%s", bookingID, result.Status, actor.AccountID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
