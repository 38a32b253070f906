package create_booking

import (
	"errors"
	"net/http"

	"github.com/bookingjasa/booking-service/internal/api/handlers"
	"github.com/bookingjasa/booking-service/internal/api/middleware"
	createBooking "github.com/bookingjasa/booking-service/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidDate        = "invalid booking date, expected YYYY-MM-DD"
	msgInvalidTimeSlot    = "invalid time slot, expected HH:MM"
	msgOfferingNotFound   = "service offering not found"
	msgScheduleConflict   = "the selected date and time slot is already booked"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.ActorFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, "missing account identity")
		return
	}

	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(actor.AccountID)
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse request: %v", err)
		if errors.Is(err, errInvalidTimeSlot) {
			handlers.RespondBadRequest(w, msgInvalidTimeSlot)
		} else {
			handlers.RespondBadRequest(w, msgInvalidDate)
		}
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrScheduleConflict):
			h.logger.Warn("POST /bookings - Schedule conflict: account=%s, service=%d, date=%s, slot=%s",
				actor.AccountID, req.ServiceID, req.BookingDate, req.TimeSlot)
			handlers.RespondConflict(w, msgScheduleConflict)

		case errors.Is(err, createBooking.ErrOfferingNotFound):
			h.logger.Warn("POST /bookings - Offering not found: service=%d", req.ServiceID)
			handlers.RespondNotFound(w, msgOfferingNotFound)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /bookings - Failed to create booking: account=%s, error=%v", actor.AccountID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("POST /bookings - Booking created: booking_id=%d, account=%s", result.ID, actor.AccountID)
	handlers.RespondJSON(w, http.StatusCreated, response)
}
