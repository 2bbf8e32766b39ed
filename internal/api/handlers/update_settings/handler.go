package update_settings

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/tours-service/internal/api/handlers"
	"github.com/m04kA/tours-service/internal/api/middleware"
	"github.com/m04kA/tours-service/internal/service/settings"
)

const (
	msgInvalidRequestBody = "Invalid request body"
	msgUnknownGroup       = "Unknown settings group, expected general, social or homepage"
	msgInvalidValue       = "Settings value must be a JSON object"
)

type Handler struct {
	service SettingsService
	logger  Logger
}

func NewHandler(service SettingsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/admin/settings/{group}
// Тело запроса целиком заменяет значение группы.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	group := mux.Vars(r)["group"]

	var value json.RawMessage
	if err := handlers.DecodeJSON(r, &value); err != nil {
		h.logger.Warn("PUT /admin/settings/{group} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	resp, err := h.service.Update(r.Context(), group, value)
	if err != nil {
		switch {
		case errors.Is(err, settings.ErrUnknownGroup):
			handlers.RespondNotFound(w, msgUnknownGroup)
		case errors.Is(err, settings.ErrInvalidValue):
			handlers.RespondBadRequest(w, msgInvalidValue)
		default:
			h.logger.Error("PUT /admin/settings/{group} - Failed: group=%s, error=%v", group, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	adminID, _ := middleware.GetAdminID(r.Context())
	h.logger.Info("PUT /admin/settings/{group} - group=%s saved by admin_id=%d", group, adminID)
	handlers.RespondJSON(w, http.StatusOK, resp)
}
