package models

import (
	"encoding/json"
	"time"

	"github.com/m04kA/tours-service/internal/domain"
)

// SettingsResponse значение одной группы настроек
type SettingsResponse struct {
	Key       string          `json:"key"`
	Value     json.RawMessage `json:"value"`
	UpdatedAt *time.Time      `json:"updatedAt,omitempty"`
}

// AllSettingsResponse все группы, ключ - имя группы
type AllSettingsResponse struct {
	Settings map[string]json.RawMessage `json:"settings"`
}

// FromDomainSettings конвертирует domain модель в DTO
func FromDomainSettings(s *domain.SiteSettings) *SettingsResponse {
	if s == nil {
		return nil
	}
	updatedAt := s.UpdatedAt
	return &SettingsResponse{
		Key:       string(s.Key),
		Value:     s.Value,
		UpdatedAt: &updatedAt,
	}
}
