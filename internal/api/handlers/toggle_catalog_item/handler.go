package toggle_catalog_item

import (
	"errors"
	"net/http"

	"github.com/m04kA/tours-service/internal/api/handlers"
	"github.com/m04kA/tours-service/internal/service/catalog"
)

const (
	msgUnknownKind = "Unknown catalog type"
	msgInvalidID   = "Invalid item ID"
	msgNotFound    = "Item not found"
)

type Handler struct {
	service CatalogService
	logger  Logger
}

func NewHandler(service CatalogService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/admin/{kind}/{id}/publish
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	kind, ok := handlers.CatalogKind(r)
	if !ok {
		handlers.RespondNotFound(w, msgUnknownKind)
		return
	}

	id, err := handlers.PathInt64(r, "id")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	resp, err := h.service.TogglePublished(r.Context(), kind, id)
	if err != nil {
		if errors.Is(err, catalog.ErrItemNotFound) {
			handlers.RespondNotFound(w, msgNotFound)
			return
		}
		h.logger.Error("PATCH /admin/%s/{id}/publish - Failed to toggle id=%d: %v", kind, id, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, resp)
}
