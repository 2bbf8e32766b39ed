package create_booking

import (
	"context"
	"time"

	"github.com/m04kA/tours-service/internal/domain"
	"github.com/m04kA/tours-service/internal/integrations/functions"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
}

// CatalogRepository интерфейс репозитория каталога
type CatalogRepository interface {
	GetByID(ctx context.Context, kind domain.CatalogKind, id int64) (*domain.CatalogItem, error)
}

// CodeGenerator генератор трекинг-кодов
type CodeGenerator interface {
	Generate() (string, error)
}

// Notifier отправка письма о бронировании
type Notifier interface {
	SendBookingEmail(ctx context.Context, payload functions.BookingEmail) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
