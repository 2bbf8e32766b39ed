package dashboard

import (
	"context"

	"github.com/m04kA/tours-service/internal/domain"
)

// CatalogRepository счётчики каталога
type CatalogRepository interface {
	Counts(ctx context.Context, kind domain.CatalogKind) (domain.CatalogCounts, error)
}

// BookingRepository агрегаты бронирований
type BookingRepository interface {
	CountByStatus(ctx context.Context) (map[domain.BookingStatus]int, error)
	SumRevenue(ctx context.Context, statuses []domain.BookingStatus) (float64, error)
	List(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
