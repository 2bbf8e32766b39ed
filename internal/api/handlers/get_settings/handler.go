package get_settings

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/tours-service/internal/api/handlers"
	"github.com/m04kA/tours-service/internal/service/settings"
)

const msgUnknownGroup = "Unknown settings group, expected general, social or homepage"

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

// HandleAll GET /api/v1/settings
func (h *Handler) HandleAll(w http.ResponseWriter, r *http.Request) {
	resp, err := h.service.GetAll(r.Context())
	if err != nil {
		h.logger.Error("GET /settings - Failed to load settings: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, resp)
}

// Handle GET /api/v1/settings/{group}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	group := mux.Vars(r)["group"]

	resp, err := h.service.Get(r.Context(), group)
	if err != nil {
		switch {
		case errors.Is(err, settings.ErrUnknownGroup):
			handlers.RespondNotFound(w, msgUnknownGroup)
		default:
			h.logger.Error("GET /settings/{group} - Failed: group=%s, error=%v", group, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, resp)
}
