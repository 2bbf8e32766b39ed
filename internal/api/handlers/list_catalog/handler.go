package list_catalog

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/m04kA/tours-service/internal/api/handlers"
	"github.com/m04kA/tours-service/internal/api/middleware"
	"github.com/m04kA/tours-service/internal/service/catalog"
	"github.com/m04kA/tours-service/internal/service/catalog/models"
)

const (
	msgUnknownKind     = "Unknown catalog type"
	msgInvalidFeatured = "Parameter featured must be true or false"
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

// Handle GET /api/v1/{kind}?category=&search=&featured=
// Посетитель видит только опубликованные позиции, администратор все.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	kind, ok := handlers.CatalogKind(r)
	if !ok {
		handlers.RespondNotFound(w, msgUnknownKind)
		return
	}

	query := r.URL.Query()
	req := &models.ListRequest{
		Kind:   kind,
		Search: query.Get("search"),
	}
	if category := query.Get("category"); category != "" {
		req.Category = &category
	}
	if featured := query.Get("featured"); featured != "" {
		v, err := strconv.ParseBool(featured)
		if err != nil {
			handlers.RespondBadRequest(w, msgInvalidFeatured)
			return
		}
		req.FeaturedOnly = v
	}

	viewer := middleware.GetViewer(r.Context())

	resp, err := h.service.List(r.Context(), viewer, req)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrUnknownKind):
			handlers.RespondNotFound(w, msgUnknownKind)
		case errors.Is(err, catalog.ErrInvalidInput):
			h.logger.Warn("GET /%s - Invalid filter: %v", kind, err)
			handlers.RespondBadRequest(w, err.Error())
		default:
			h.logger.Error("GET /%s - Failed to list catalog: %v", kind, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, resp)
}
