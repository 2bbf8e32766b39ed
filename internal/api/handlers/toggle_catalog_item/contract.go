package toggle_catalog_item

import (
	"context"

	"github.com/m04kA/tours-service/internal/service/catalog/models"
)

type CatalogService interface {
	TogglePublished(ctx context.Context, kind string, id int64) (*models.ToggleResponse, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
