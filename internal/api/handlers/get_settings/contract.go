package get_settings

import (
	"context"

	"github.com/m04kA/tours-service/internal/service/settings/models"
)

type SettingsService interface {
	Get(ctx context.Context, group string) (*models.SettingsResponse, error)
	GetAll(ctx context.Context) (*models.AllSettingsResponse, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
