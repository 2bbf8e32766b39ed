package catalog

import (
	"context"
	"time"

	"github.com/m04kA/tours-service/internal/domain"
)

// CatalogRepository интерфейс репозитория каталога
type CatalogRepository interface {
	List(ctx context.Context, filter domain.CatalogFilter) ([]*domain.CatalogItem, error)
	GetBySlug(ctx context.Context, kind domain.CatalogKind, slug string) (*domain.CatalogItem, error)
	GetByID(ctx context.Context, kind domain.CatalogKind, id int64) (*domain.CatalogItem, error)
	Create(ctx context.Context, item *domain.CatalogItem) (*domain.CatalogItem, error)
	Update(ctx context.Context, item *domain.CatalogItem, expectedUpdatedAt *time.Time) (*domain.CatalogItem, error)
	TogglePublished(ctx context.Context, kind domain.CatalogKind, id int64) (bool, error)
	Delete(ctx context.Context, kind domain.CatalogKind, id int64) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
