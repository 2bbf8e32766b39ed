package models

import (
	"time"

	"github.com/m04kA/tours-service/internal/domain"
)

// Request модели

// ListRequest фильтр каталога
type ListRequest struct {
	Kind         string
	Category     *string
	Search       string
	FeaturedOnly bool
}

// ItemRequest поля позиции каталога для создания и редактирования
type ItemRequest struct {
	Title            string   `json:"title"`
	Slug             string   `json:"slug"`
	Category         string   `json:"category"`
	Location         *string  `json:"location,omitempty"`
	ShortDescription *string  `json:"shortDescription,omitempty"`
	Description      *string  `json:"description,omitempty"`
	Price            *float64 `json:"price"`
	Duration         *string  `json:"duration,omitempty"`
	ImageURL         *string  `json:"imageUrl,omitempty"`
	IsPublished      bool     `json:"isPublished"`
	IsFeatured       bool     `json:"isFeatured"`
	SortOrder        int      `json:"sortOrder"`

	// Если задан, сохранение пройдёт только при неизменном updated_at
	ExpectedUpdatedAt *time.Time `json:"expectedUpdatedAt,omitempty"`
}

// Response модели

// ItemResponse позиция каталога
type ItemResponse struct {
	ID               int64     `json:"id"`
	Kind             string    `json:"kind"`
	Title            string    `json:"title"`
	Slug             string    `json:"slug"`
	Category         string    `json:"category"`
	Location         *string   `json:"location,omitempty"`
	ShortDescription *string   `json:"shortDescription,omitempty"`
	Description      *string   `json:"description,omitempty"`
	Price            float64   `json:"price"`
	Duration         *string   `json:"duration,omitempty"`
	ImageURL         *string   `json:"imageUrl,omitempty"`
	IsPublished      bool      `json:"isPublished"`
	IsFeatured       bool      `json:"isFeatured"`
	SortOrder        int       `json:"sortOrder"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

// ListResponse список позиций
type ListResponse struct {
	Items []ItemResponse `json:"items"`
}

// ToggleResponse новое значение флага публикации
type ToggleResponse struct {
	ID          int64  `json:"id"`
	Kind        string `json:"kind"`
	IsPublished bool   `json:"isPublished"`
}

// Методы конвертации

// FromDomainItem конвертирует domain модель в DTO
func FromDomainItem(item *domain.CatalogItem) *ItemResponse {
	if item == nil {
		return nil
	}

	return &ItemResponse{
		ID:               item.ID,
		Kind:             string(item.Kind),
		Title:            item.Title,
		Slug:             item.Slug,
		Category:         item.Category,
		Location:         item.Location,
		ShortDescription: item.ShortDescription,
		Description:      item.Description,
		Price:            item.Price,
		Duration:         item.Duration,
		ImageURL:         item.ImageURL,
		IsPublished:      item.IsPublished,
		IsFeatured:       item.IsFeatured,
		SortOrder:        item.SortOrder,
		CreatedAt:        item.CreatedAt,
		UpdatedAt:        item.UpdatedAt,
	}
}

// FromDomainItems конвертирует список domain моделей в DTO
func FromDomainItems(items []*domain.CatalogItem) *ListResponse {
	resp := &ListResponse{Items: make([]ItemResponse, 0, len(items))}
	for _, item := range items {
		if r := FromDomainItem(item); r != nil {
			resp.Items = append(resp.Items, *r)
		}
	}
	return resp
}

// ToDomainItem собирает domain модель из запроса
func (r *ItemRequest) ToDomainItem(kind domain.CatalogKind, id int64) *domain.CatalogItem {
	item := &domain.CatalogItem{
		ID:               id,
		Kind:             kind,
		Title:            r.Title,
		Slug:             r.Slug,
		Category:         r.Category,
		Location:         r.Location,
		ShortDescription: r.ShortDescription,
		Description:      r.Description,
		Duration:         r.Duration,
		ImageURL:         r.ImageURL,
		IsPublished:      r.IsPublished,
		IsFeatured:       r.IsFeatured,
		SortOrder:        r.SortOrder,
	}
	if r.Price != nil {
		item.Price = *r.Price
	}
	return item
}
