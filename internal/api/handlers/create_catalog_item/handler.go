package create_catalog_item

import (
	"errors"
	"net/http"

	"github.com/m04kA/tours-service/internal/api/handlers"
	"github.com/m04kA/tours-service/internal/service/catalog"
	"github.com/m04kA/tours-service/internal/service/catalog/models"
)

const (
	msgUnknownKind        = "Unknown catalog type"
	msgInvalidRequestBody = "Invalid request body"
	msgDuplicateSlug      = "Slug is already in use"
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

// Handle POST /api/v1/admin/{kind}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	kind, ok := handlers.CatalogKind(r)
	if !ok {
		handlers.RespondNotFound(w, msgUnknownKind)
		return
	}

	var req models.ItemRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/%s - Invalid request body: %v", kind, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	item, err := h.service.Create(r.Context(), kind, &req)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrInvalidInput):
			handlers.RespondBadRequest(w, err.Error())
		case errors.Is(err, catalog.ErrDuplicateSlug):
			handlers.RespondConflict(w, msgDuplicateSlug)
		case errors.Is(err, catalog.ErrUnknownKind):
			handlers.RespondNotFound(w, msgUnknownKind)
		default:
			h.logger.Error("POST /admin/%s - Failed to create item: %v", kind, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /admin/%s - Item created: id=%d", kind, item.ID)
	handlers.RespondJSON(w, http.StatusCreated, item)
}
