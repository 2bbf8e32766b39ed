package download_voucher

import (
	"context"

	"github.com/m04kA/tours-service/internal/service/bookings/models"
)

type BookingService interface {
	Voucher(ctx context.Context, code string) (*models.Voucher, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
