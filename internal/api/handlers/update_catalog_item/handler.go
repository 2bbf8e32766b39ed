package update_catalog_item

import (
	"errors"
	"net/http"

	"github.com/m04kA/tours-service/internal/api/handlers"
	"github.com/m04kA/tours-service/internal/service/catalog"
	"github.com/m04kA/tours-service/internal/service/catalog/models"
)

const (
	msgUnknownKind        = "Unknown catalog type"
	msgInvalidID          = "Invalid item ID"
	msgInvalidRequestBody = "Invalid request body"
	msgNotFound           = "Item not found"
	msgDuplicateSlug      = "Slug is already in use"
	msgVersionConflict    = "Item was modified by someone else, reload and try again"
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

// Handle PUT /api/v1/admin/{kind}/{id}
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

	var req models.ItemRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /admin/%s/{id} - Invalid request body: %v", kind, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	item, err := h.service.Update(r.Context(), kind, id, &req)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrInvalidInput):
			handlers.RespondBadRequest(w, err.Error())
		case errors.Is(err, catalog.ErrItemNotFound):
			handlers.RespondNotFound(w, msgNotFound)
		case errors.Is(err, catalog.ErrDuplicateSlug):
			handlers.RespondConflict(w, msgDuplicateSlug)
		case errors.Is(err, catalog.ErrVersionConflict):
			handlers.RespondConflict(w, msgVersionConflict)
		default:
			h.logger.Error("PUT /admin/%s/{id} - Failed to update item id=%d: %v", kind, id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /admin/%s/{id} - Item updated: id=%d", kind, id)
	handlers.RespondJSON(w, http.StatusOK, item)
}
