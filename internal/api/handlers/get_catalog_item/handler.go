package get_catalog_item

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/tours-service/internal/api/handlers"
	"github.com/m04kA/tours-service/internal/api/middleware"
	"github.com/m04kA/tours-service/internal/service/catalog"
)

const (
	msgUnknownKind = "Unknown catalog type"
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

// Handle GET /api/v1/{kind}/{slug}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	kind, ok := handlers.CatalogKind(r)
	if !ok {
		handlers.RespondNotFound(w, msgUnknownKind)
		return
	}
	slug := mux.Vars(r)["slug"]

	item, err := h.service.GetBySlug(r.Context(), middleware.GetViewer(r.Context()), kind, slug)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrItemNotFound), errors.Is(err, catalog.ErrUnknownKind):
			h.logger.Warn("GET /%s/{slug} - Not found: slug=%s", kind, slug)
			handlers.RespondNotFound(w, msgNotFound)
		default:
			h.logger.Error("GET /%s/{slug} - Failed to get item: slug=%s, error=%v", kind, slug, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, item)
}
