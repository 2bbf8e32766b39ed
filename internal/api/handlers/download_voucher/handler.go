package download_voucher

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/tours-service/internal/api/handlers"
	"github.com/m04kA/tours-service/internal/service/bookings"
)

const (
	msgNotFound     = "Booking Not Found"
	msgNotAvailable = "Voucher is available only for confirmed or completed bookings"
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

// Handle GET /api/v1/bookings/track/{code}/voucher
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	code := mux.Vars(r)["code"]

	voucher, err := h.service.Voucher(r.Context(), code)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrBookingNotFound):
			handlers.RespondNotFound(w, msgNotFound)
		case errors.Is(err, bookings.ErrVoucherNotAvailable):
			handlers.RespondConflict(w, msgNotAvailable)
		default:
			h.logger.Error("GET /bookings/track/{code}/voucher - Failed: code=%s, error=%v", code, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, voucher.FileName))
	w.Header().Set("Content-Length", strconv.Itoa(len(voucher.Content)))
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(voucher.Content); err != nil {
		h.logger.Warn("GET /bookings/track/{code}/voucher - Write failed: %v", err)
	}
}
