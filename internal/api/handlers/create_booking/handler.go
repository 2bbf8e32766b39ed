package create_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/tours-service/internal/api/handlers"
	createBooking "github.com/m04kA/tours-service/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "Invalid request body"
	msgInvalidDate        = "Invalid travel date format, expected YYYY-MM-DD"
	msgDateInPast         = "Travel date must not be in the past"
	msgItemNotFound       = "Selected tour is not available"
	msgTryAgain           = "Could not create booking, please try again"
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
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	ucReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /bookings - Invalid travel date %q: %v", req.TravelDate, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	resp, err := h.useCase.Execute(r.Context(), ucReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrInvalidInput):
			handlers.RespondBadRequest(w, err.Error())
		case errors.Is(err, createBooking.ErrInvalidDate):
			handlers.RespondBadRequest(w, msgDateInPast)
		case errors.Is(err, createBooking.ErrItemNotFound):
			handlers.RespondNotFound(w, msgItemNotFound)
		case errors.Is(err, createBooking.ErrTrackingCodeExhausted):
			h.logger.Error("POST /bookings - %v", err)
			handlers.RespondError(w, http.StatusServiceUnavailable, msgTryAgain)
		default:
			h.logger.Error("POST /bookings - Failed to create booking: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created: id=%d, code=%s", resp.ID, resp.TrackingCode)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(resp))
}
