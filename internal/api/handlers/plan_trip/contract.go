package plan_trip

import (
	"context"

	planTrip "github.com/m04kA/tours-service/internal/usecase/plan_trip"
)

type PlanTripUseCase interface {
	WhatsAppLink(req *planTrip.Request) (*planTrip.WhatsAppResponse, error)
	SendEmail(ctx context.Context, req *planTrip.Request) (*planTrip.EmailResponse, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
