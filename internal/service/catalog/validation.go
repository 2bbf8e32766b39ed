package catalog

import (
	"fmt"
	"strings"

	"github.com/m04kA/tours-service/internal/domain"
	"github.com/m04kA/tours-service/internal/service/catalog/models"
)

func parseKind(kind string) (domain.CatalogKind, error) {
	k := domain.CatalogKind(strings.ToLower(strings.TrimSpace(kind)))
	if !k.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
	return k, nil
}

// normalizeItemRequest проверяет поля и заполняет slug из заголовка, если он не задан
func normalizeItemRequest(req *models.ItemRequest) error {
	req.Title = strings.TrimSpace(req.Title)
	// Категории храним в нижнем регистре, фильтр по ним тоже приводится к нему
	req.Category = strings.ToLower(strings.TrimSpace(req.Category))
	req.Slug = strings.TrimSpace(req.Slug)

	if req.Title == "" {
		return fmt.Errorf("%w: title is required", ErrInvalidInput)
	}
	if len(req.Title) > domain.MaxTitleLength {
		return fmt.Errorf("%w: title must be at most %d characters", ErrInvalidInput, domain.MaxTitleLength)
	}

	if req.Slug == "" {
		req.Slug = slugify(req.Title)
	}
	if !validSlug(req.Slug) {
		return fmt.Errorf("%w: slug must contain only lowercase letters, digits and dashes", ErrInvalidInput)
	}
	if len(req.Slug) > domain.MaxTitleLength {
		return fmt.Errorf("%w: slug must be at most %d characters", ErrInvalidInput, domain.MaxTitleLength)
	}

	if req.Price == nil {
		return fmt.Errorf("%w: price is required", ErrInvalidInput)
	}
	if *req.Price < 0 {
		return fmt.Errorf("%w: price must not be negative", ErrInvalidInput)
	}

	return nil
}
