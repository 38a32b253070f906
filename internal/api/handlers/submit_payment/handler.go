package submit_payment

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/bookingjasa/booking-service/internal/api/handlers"
	"github.com/bookingjasa/booking-service/internal/api/middleware"
	"github.com/bookingjasa/booking-service/internal/integrations/blobstore"
	submitPayment "github.com/bookingjasa/booking-service/internal/usecase/submit_payment"
)

// maxEvidenceBytes bounds the uploaded artifact size.
const maxEvidenceBytes = 10 << 20

const (
	msgInvalidBookingID  = "invalid booking id"
	msgMissingEvidence   = "evidence file is required"
	msgEvidenceRejected  = "evidence file was rejected by the storage service"
	msgBookingNotFound   = "booking not found"
	msgEvidenceTooLarge  = "evidence file is too large"
	msgUploadUnavailable = "evidence storage is unavailable"
)

type Handler struct {
	useCase  SubmitPaymentUseCase
	uploader EvidenceUploader
	logger   Logger
}

func NewHandler(useCase SubmitPaymentUseCase, uploader EvidenceUploader, logger Logger) *Handler {
	return &Handler{
		useCase:  useCase,
		uploader: uploader,
		logger:   logger,
	}
}

// SubmitPaymentResponse HTTP response model
type SubmitPaymentResponse struct {
	BookingID     int64  `json:"bookingId"`
	Status        string `json:"status"`
	PaymentMethod string `json:"paymentMethod"`
	AmountDue     int64  `json:"amountDue"`
	EvidenceRef   string `json:"evidenceRef"`
}

// Handle POST /api/v1/bookings/{bookingId}/payment
//
// Accepts a multipart form with an "evidence" file part. The artifact
// is handed to the blob store first; only its reference is persisted.
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

	r.Body = http.MaxBytesReader(w, r.Body, maxEvidenceBytes)
	if err := r.ParseMultipartForm(maxEvidenceBytes); err != nil {
		h.logger.Warn("POST /bookings/%d/payment - Failed to parse multipart form: %v", bookingID, err)
		handlers.RespondError(w, http.StatusRequestEntityTooLarge, msgEvidenceTooLarge)
		return
	}

	file, header, err := r.FormFile("evidence")
	if err != nil {
		handlers.RespondBadRequest(w, msgMissingEvidence)
		return
	}
	defer file.Close()

	evidenceRef, err := h.uploader.Upload(r.Context(), header.Filename, file)
	if err != nil {
		switch {
		case errors.Is(err, blobstore.ErrUploadRejected):
			h.logger.Warn("POST /bookings/%d/payment - Evidence rejected: %v", bookingID, err)
			handlers.RespondBadRequest(w, msgEvidenceRejected)
		default:
			h.logger.Error("POST /bookings/%d/payment - Evidence upload failed: %v", bookingID, err)
			handlers.RespondError(w, http.StatusBadGateway, msgUploadUnavailable)
		}
		return
	}

	result, err := h.useCase.Execute(r.Context(), &submitPayment.Request{
		BookingID:   bookingID,
		AccountID:   actor.AccountID,
		EvidenceRef: evidenceRef,
	})
	if err != nil {
		switch {
		// A foreign booking reads as absent so its existence is not leaked.
		case errors.Is(err, submitPayment.ErrBookingNotFound),
			errors.Is(err, submitPayment.ErrAccessDenied):
			h.logger.Warn("POST /bookings/%d/payment - Not found for account=%s", bookingID, actor.AccountID)
			handlers.RespondNotFound(w, msgBookingNotFound)

		case errors.Is(err, submitPayment.ErrInvalidInput):
			h.logger.Warn("POST /bookings/%d/payment - Invalid input: %v", bookingID, err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /bookings/%d/payment - Failed: account=%s, error=%v", bookingID, actor.AccountID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings/%d/payment - Payment submitted: account=%s, ref=%s", bookingID, actor.AccountID, result.EvidenceRef)
	handlers.RespondJSON(w, http.StatusOK, &SubmitPaymentResponse{
		BookingID:     result.BookingID,
		Status:        result.Status,
		PaymentMethod: result.PaymentMethod,
		AmountDue:     result.AmountDue,
		EvidenceRef:   result.EvidenceRef,
	})
}
