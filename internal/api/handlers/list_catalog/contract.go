package list_catalog

import (
	"context"

	"github.com/m04kA/tours-service/internal/domain"
	"github.com/m04kA/tours-service/internal/service/catalog/models"
)

type CatalogService interface {
	List(ctx context.Context, viewer domain.Viewer, req *models.ListRequest) (*models.ListResponse, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
