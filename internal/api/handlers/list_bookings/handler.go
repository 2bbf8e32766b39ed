package list_bookings

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/m04kA/tours-service/internal/api/handlers"
	"github.com/m04kA/tours-service/internal/service/bookings"
	"github.com/m04kA/tours-service/internal/service/bookings/models"
)

const (
	msgInvalidPaging = "Parameters limit and offset must be integers"
	msgInvalidStatus = "Invalid status, expected pending, confirmed, cancelled or completed"
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

// Handle GET /api/v1/admin/bookings?status=&search=&limit=&offset=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	req := &models.ListBookingsRequest{Search: query.Get("search")}
	if status := query.Get("status"); status != "" {
		req.Status = &status
	}

	var err error
	if raw := query.Get("limit"); raw != "" {
		if req.Limit, err = strconv.Atoi(raw); err != nil {
			handlers.RespondBadRequest(w, msgInvalidPaging)
			return
		}
	}
	if raw := query.Get("offset"); raw != "" {
		if req.Offset, err = strconv.Atoi(raw); err != nil {
			handlers.RespondBadRequest(w, msgInvalidPaging)
			return
		}
	}

	resp, err := h.service.List(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidStatus):
			handlers.RespondBadRequest(w, msgInvalidStatus)
		case errors.Is(err, bookings.ErrInvalidInput):
			handlers.RespondBadRequest(w, err.Error())
		default:
			h.logger.Error("GET /admin/bookings - Failed to list bookings: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, resp)
}
