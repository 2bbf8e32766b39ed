package delete_catalog_item

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

// Handle DELETE /api/v1/admin/{kind}/{id}
// Удаление окончательное, подтверждение спрашивает клиент.
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

	if err := h.service.Delete(r.Context(), kind, id); err != nil {
		if errors.Is(err, catalog.ErrItemNotFound) {
			handlers.RespondNotFound(w, msgNotFound)
			return
		}
		h.logger.Error("DELETE /admin/%s/{id} - Failed to delete id=%d: %v", kind, id, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("DELETE /admin/%s/{id} - Item deleted: id=%d", kind, id)
	handlers.RespondNoContent(w)
}
