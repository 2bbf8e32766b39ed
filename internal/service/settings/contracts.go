package settings

import (
	"context"
	"encoding/json"

	"github.com/m04kA/tours-service/internal/domain"
)

// SettingsRepository интерфейс репозитория настроек сайта
type SettingsRepository interface {
	Get(ctx context.Context, key domain.SettingsGroup) (*domain.SiteSettings, error)
	Upsert(ctx context.Context, key domain.SettingsGroup, value json.RawMessage) (*domain.SiteSettings, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
