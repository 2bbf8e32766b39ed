package plan_trip

import (
	"context"

	"github.com/m04kA/tours-service/internal/integrations/functions"
)

// Notifier вызов функции send-booking-email
type Notifier interface {
	SendBookingEmail(ctx context.Context, payload functions.BookingEmail) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
