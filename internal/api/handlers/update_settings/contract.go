package update_settings

import (
	"context"
	"encoding/json"

	"github.com/m04kA/tours-service/internal/service/settings/models"
)

type SettingsService interface {
	Update(ctx context.Context, group string, value json.RawMessage) (*models.SettingsResponse, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
