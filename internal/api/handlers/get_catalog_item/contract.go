package get_catalog_item

import (
	"context"

	"github.com/m04kA/tours-service/internal/domain"
	"github.com/m04kA/tours-service/internal/service/catalog/models"
)

type CatalogService interface {
	GetBySlug(ctx context.Context, viewer domain.Viewer, kind string, slug string) (*models.ItemResponse, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
