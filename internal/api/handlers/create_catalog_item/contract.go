package create_catalog_item

import (
	"context"

	"github.com/m04kA/tours-service/internal/service/catalog/models"
)

type CatalogService interface {
	Create(ctx context.Context, kind string, req *models.ItemRequest) (*models.ItemResponse, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
