package track_booking

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/tours-service/internal/api/handlers"
	"github.com/m04kA/tours-service/internal/service/bookings"
	"github.com/m04kA/tours-service/internal/service/bookings/models"
)

const (
	msgMissingCode = "Please enter a tracking code"
	msgNotFound    = "Booking Not Found"
)

// NotFoundResponse ответ, когда бронирования с таким кодом нет
type NotFoundResponse struct {
	Found        bool   `json:"found"`
	TrackingCode string `json:"trackingCode"`
	Error        string `json:"error"`
}

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

// Handle GET /api/v1/bookings/track/{code}
// Регистр кода не важен. "Не найдено" отдаётся как 404 с тем же кодом, а не как ошибка сервера.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	code := mux.Vars(r)["code"]

	result, err := h.service.Track(r.Context(), code)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgMissingCode)
		default:
			h.logger.Error("GET /bookings/track/{code} - Lookup failed: code=%s, error=%v", code, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	if !result.Found {
		respondNotFound(w, result)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

func respondNotFound(w http.ResponseWriter, result *models.TrackResult) {
	handlers.RespondJSON(w, http.StatusNotFound, NotFoundResponse{
		Found:        false,
		TrackingCode: result.TrackingCode,
		Error:        msgNotFound,
	})
}
