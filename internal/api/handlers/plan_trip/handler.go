package plan_trip

import (
	"errors"
	"net/http"

	"github.com/m04kA/tours-service/internal/api/handlers"
	"github.com/m04kA/tours-service/internal/integrations/functions"
	planTrip "github.com/m04kA/tours-service/internal/usecase/plan_trip"
)

const (
	msgInvalidRequestBody = "Invalid request body"
	msgInvalidDate        = "Invalid date format, expected YYYY-MM-DD"
	msgNotConfigured      = "Messaging is not configured"
	msgSendFailed         = "Failed to send trip request, please try again later"
)

type Handler struct {
	useCase PlanTripUseCase
	logger  Logger
}

func NewHandler(useCase PlanTripUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// HandleWhatsApp POST /api/v1/trip-requests/whatsapp
// Ничего не отправляет, только собирает ссылку wa.me.
func (h *Handler) HandleWhatsApp(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decode(w, r, "POST /trip-requests/whatsapp")
	if !ok {
		return
	}

	resp, err := h.useCase.WhatsAppLink(req)
	if err != nil {
		switch {
		case errors.Is(err, planTrip.ErrInvalidInput):
			handlers.RespondBadRequest(w, err.Error())
		case errors.Is(err, planTrip.ErrMessagingNotConfigured):
			h.logger.Error("POST /trip-requests/whatsapp - %v", err)
			handlers.RespondError(w, http.StatusServiceUnavailable, msgNotConfigured)
		default:
			h.logger.Error("POST /trip-requests/whatsapp - Failed: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, WhatsAppResponse{URL: resp.URL, Message: resp.Message})
}

// HandleEmail POST /api/v1/trip-requests/email
func (h *Handler) HandleEmail(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decode(w, r, "POST /trip-requests/email")
	if !ok {
		return
	}

	resp, err := h.useCase.SendEmail(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, planTrip.ErrInvalidInput):
			handlers.RespondBadRequest(w, err.Error())
		case errors.Is(err, functions.ErrNotConfigured):
			h.logger.Error("POST /trip-requests/email - %v", err)
			handlers.RespondError(w, http.StatusServiceUnavailable, msgNotConfigured)
		case errors.Is(err, planTrip.ErrSendFailed):
			h.logger.Warn("POST /trip-requests/email - Send failed: %v", err)
			// Сообщение функции отдаём пользователю как есть
			if msg, ok := functions.IsFunctionError(err); ok && msg != "" {
				handlers.RespondBadGateway(w, msg)
				return
			}
			handlers.RespondBadGateway(w, msgSendFailed)
		default:
			h.logger.Error("POST /trip-requests/email - Failed: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, EmailResponse{Sent: resp.Sent})
}

func (h *Handler) decode(w http.ResponseWriter, r *http.Request, route string) (*planTrip.Request, bool) {
	var body TripRequest
	if err := handlers.DecodeJSON(r, &body); err != nil {
		h.logger.Warn("%s - Invalid request body: %v", route, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return nil, false
	}

	req, err := body.ToUseCaseRequest()
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidDate)
		return nil, false
	}

	return req, true
}
