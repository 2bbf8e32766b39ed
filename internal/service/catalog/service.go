package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/tours-service/internal/domain"
	catalogRepo "github.com/m04kA/tours-service/internal/infra/storage/catalog"
	"github.com/m04kA/tours-service/internal/service/catalog/models"
)

// Service сервис каталога туров, активностей и трансферов.
// Кто смотрит каталог, передаётся явно через domain.Viewer.
type Service struct {
	repo   CatalogRepository
	logger Logger
}

// NewService создает новый экземпляр сервиса каталога
func NewService(repo CatalogRepository, logger Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// List возвращает позиции каталога; посетителю только опубликованные
func (s *Service) List(ctx context.Context, viewer domain.Viewer, req *models.ListRequest) (*models.ListResponse, error) {
	kind, err := parseKind(req.Kind)
	if err != nil {
		return nil, err
	}

	search := strings.TrimSpace(req.Search)
	if len(search) > domain.MaxSearchLength {
		return nil, fmt.Errorf("%w: search must be at most %d characters", ErrInvalidInput, domain.MaxSearchLength)
	}

	filter := domain.CatalogFilter{
		Kind:         kind,
		Viewer:       viewer,
		Search:       search,
		FeaturedOnly: req.FeaturedOnly,
	}
	if req.Category != nil && strings.TrimSpace(*req.Category) != "" {
		category := strings.ToLower(strings.TrimSpace(*req.Category))
		filter.Category = &category
	}

	items, err := s.repo.List(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error for kind=%s: %v", kind, err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	// Репозиторий уже фильтрует по is_published, повторная проверка на случай другой реализации
	visible := items[:0]
	for _, item := range items {
		if item.VisibleTo(viewer) {
			visible = append(visible, item)
		}
	}

	s.logger.Info("List: kind=%s, role=%s, found %d items", kind, viewer.Role, len(visible))
	return models.FromDomainItems(visible), nil
}

// GetBySlug возвращает позицию по slug.
// Неопубликованная позиция для посетителя выглядит как несуществующая.
func (s *Service) GetBySlug(ctx context.Context, viewer domain.Viewer, kind string, slug string) (*models.ItemResponse, error) {
	k, err := parseKind(kind)
	if err != nil {
		return nil, err
	}

	item, err := s.repo.GetBySlug(ctx, k, strings.ToLower(strings.TrimSpace(slug)))
	if err != nil {
		return nil, s.mapRepoError("GetBySlug", err)
	}

	if !item.VisibleTo(viewer) {
		s.logger.Warn("GetBySlug: %s slug=%s is not published", k, slug)
		return nil, ErrItemNotFound
	}

	return models.FromDomainItem(item), nil
}

// GetByID возвращает позицию по ID (админка)
func (s *Service) GetByID(ctx context.Context, kind string, id int64) (*models.ItemResponse, error) {
	k, err := parseKind(kind)
	if err != nil {
		return nil, err
	}

	item, err := s.repo.GetByID(ctx, k, id)
	if err != nil {
		return nil, s.mapRepoError("GetByID", err)
	}

	return models.FromDomainItem(item), nil
}

// Create создаёт позицию каталога
func (s *Service) Create(ctx context.Context, kind string, req *models.ItemRequest) (*models.ItemResponse, error) {
	k, err := parseKind(kind)
	if err != nil {
		return nil, err
	}
	if err := normalizeItemRequest(req); err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}

	created, err := s.repo.Create(ctx, req.ToDomainItem(k, 0))
	if err != nil {
		return nil, s.mapRepoError("Create", err)
	}

	s.logger.Info("Create: %s id=%d slug=%s created", k, created.ID, created.Slug)
	return models.FromDomainItem(created), nil
}

// Update перезаписывает позицию целиком.
// Без ExpectedUpdatedAt действует last write wins.
func (s *Service) Update(ctx context.Context, kind string, id int64, req *models.ItemRequest) (*models.ItemResponse, error) {
	k, err := parseKind(kind)
	if err != nil {
		return nil, err
	}
	if err := normalizeItemRequest(req); err != nil {
		s.logger.Warn("Update: validation failed for %s id=%d: %v", k, id, err)
		return nil, err
	}

	updated, err := s.repo.Update(ctx, req.ToDomainItem(k, id), req.ExpectedUpdatedAt)
	if err != nil {
		return nil, s.mapRepoError("Update", err)
	}

	s.logger.Info("Update: %s id=%d updated", k, id)
	return models.FromDomainItem(updated), nil
}

// TogglePublished инвертирует только флаг публикации
func (s *Service) TogglePublished(ctx context.Context, kind string, id int64) (*models.ToggleResponse, error) {
	k, err := parseKind(kind)
	if err != nil {
		return nil, err
	}

	published, err := s.repo.TogglePublished(ctx, k, id)
	if err != nil {
		return nil, s.mapRepoError("TogglePublished", err)
	}

	s.logger.Info("TogglePublished: %s id=%d is_published=%t", k, id, published)
	return &models.ToggleResponse{ID: id, Kind: string(k), IsPublished: published}, nil
}

// Delete удаляет позицию без возможности восстановления
func (s *Service) Delete(ctx context.Context, kind string, id int64) error {
	k, err := parseKind(kind)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, k, id); err != nil {
		return s.mapRepoError("Delete", err)
	}

	s.logger.Info("Delete: %s id=%d deleted", k, id)
	return nil
}

func (s *Service) mapRepoError(op string, err error) error {
	switch {
	case errors.Is(err, catalogRepo.ErrItemNotFound):
		s.logger.Warn("%s: item not found", op)
		return ErrItemNotFound
	case errors.Is(err, catalogRepo.ErrDuplicateSlug):
		s.logger.Warn("%s: duplicate slug", op)
		return ErrDuplicateSlug
	case errors.Is(err, catalogRepo.ErrVersionConflict):
		s.logger.Warn("%s: version conflict", op)
		return ErrVersionConflict
	case errors.Is(err, catalogRepo.ErrUnknownKind):
		return ErrUnknownKind
	default:
		s.logger.Error("%s: repository error: %v", op, err)
		return fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
}
