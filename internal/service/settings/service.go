package settings

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/m04kA/tours-service/internal/domain"
	settingsRepo "github.com/m04kA/tours-service/internal/infra/storage/settings"
	"github.com/m04kA/tours-service/internal/service/settings/models"
)

var emptyObject = json.RawMessage(`{}`)

// Service сервис настроек сайта (general, social, homepage)
type Service struct {
	repo   SettingsRepository
	logger Logger
}

// NewService создает новый экземпляр сервиса настроек
func NewService(repo SettingsRepository, logger Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// Get возвращает группу настроек; несохранённая группа отдаётся пустым объектом
func (s *Service) Get(ctx context.Context, group string) (*models.SettingsResponse, error) {
	key := domain.SettingsGroup(group)
	if !key.IsValid() {
		return nil, fmt.Errorf("%w: %q", ErrUnknownGroup, group)
	}

	settings, err := s.repo.Get(ctx, key)
	if err != nil {
		if errors.Is(err, settingsRepo.ErrSettingsNotFound) {
			return &models.SettingsResponse{Key: group, Value: emptyObject}, nil
		}
		s.logger.Error("Get: repository error for group=%s: %v", group, err)
		return nil, fmt.Errorf("%w: Get - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainSettings(settings), nil
}

// GetAll возвращает все группы для публичного сайта
func (s *Service) GetAll(ctx context.Context) (*models.AllSettingsResponse, error) {
	resp := &models.AllSettingsResponse{Settings: make(map[string]json.RawMessage, len(domain.SettingsGroups))}

	for _, group := range domain.SettingsGroups {
		settings, err := s.Get(ctx, string(group))
		if err != nil {
			return nil, err
		}
		resp.Settings[string(group)] = settings.Value
	}

	return resp, nil
}

// Update перезаписывает группу целиком. Конкурентные сохранения не сливаются: побеждает последнее.
func (s *Service) Update(ctx context.Context, group string, value json.RawMessage) (*models.SettingsResponse, error) {
	key := domain.SettingsGroup(group)
	if !key.IsValid() {
		return nil, fmt.Errorf("%w: %q", ErrUnknownGroup, group)
	}

	trimmed := bytes.TrimSpace(value)
	if len(trimmed) == 0 || trimmed[0] != '{' || !json.Valid(trimmed) {
		s.logger.Warn("Update: invalid value for group=%s", group)
		return nil, ErrInvalidValue
	}

	settings, err := s.repo.Upsert(ctx, key, json.RawMessage(trimmed))
	if err != nil {
		s.logger.Error("Update: repository error for group=%s: %v", group, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: settings group=%s saved", group)
	return models.FromDomainSettings(settings), nil
}
