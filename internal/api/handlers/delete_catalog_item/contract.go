package delete_catalog_item

import "context"

type CatalogService interface {
	Delete(ctx context.Context, kind string, id int64) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
