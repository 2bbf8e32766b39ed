package domain

import "time"

// CatalogKind тип позиции каталога; каждому соответствует своя таблица
type CatalogKind string

const (
	KindTour     CatalogKind = "tour"
	KindActivity CatalogKind = "activity"
	KindTransfer CatalogKind = "transfer"
)

// CatalogKinds все поддерживаемые типы каталога
var CatalogKinds = []CatalogKind{KindTour, KindActivity, KindTransfer}

// IsValid returns true if the kind is supported
func (k CatalogKind) IsValid() bool {
	switch k {
	case KindTour, KindActivity, KindTransfer:
		return true
	default:
		return false
	}
}

// CatalogItem tour, activity or transfer shown on the public site
type CatalogItem struct {
	ID               int64
	Kind             CatalogKind
	Title            string
	Slug             string
	Category         string // safari, zanzibar, airport и т.п.
	Location         *string
	ShortDescription *string
	Description      *string
	Price            float64
	Duration         *string // "3 days", "4 hours"
	ImageURL         *string
	IsPublished      bool
	IsFeatured       bool
	SortOrder        int

	CreatedAt time.Time
	UpdatedAt time.Time
}

// VisibleTo returns true if the viewer is allowed to see the item
func (c *CatalogItem) VisibleTo(viewer Viewer) bool {
	return c.IsPublished || viewer.IsAdmin()
}

// CatalogFilter фильтр списка каталога
// Viewer передаётся явно: неадминистратор видит только опубликованные позиции
type CatalogFilter struct {
	Kind         CatalogKind
	Viewer       Viewer
	Category     *string
	Search       string
	FeaturedOnly bool
}

// CatalogCounts количество позиций для дашборда
type CatalogCounts struct {
	Total     int
	Published int
}
