package update_catalog_item

import (
	"context"

	"github.com/m04kA/tours-service/internal/service/catalog/models"
)

type CatalogService interface {
	Update(ctx context.Context, kind string, id int64, req *models.ItemRequest) (*models.ItemResponse, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
