package catalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/tours-service/internal/domain"
	"github.com/m04kA/tours-service/pkg/dbmetrics"
	"github.com/m04kA/tours-service/pkg/psqlbuilder"
)

const pqUniqueViolation = "23505"

var itemColumns = []string{
	"id",
	"title",
	"slug",
	"category",
	"location",
	"short_description",
	"description",
	"price",
	"duration",
	"image_url",
	"is_published",
	"is_featured",
	"sort_order",
	"created_at",
	"updated_at",
}

// Repository репозиторий туров, активностей и трансферов.
// Все три таблицы имеют одинаковую структуру, таблица выбирается по domain.CatalogKind.
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория каталога
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// List возвращает позиции каталога по фильтру.
// Для не-админа всегда добавляется условие is_published = true.
func (r *Repository) List(ctx context.Context, filter domain.CatalogFilter) ([]*domain.CatalogItem, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	table, err := tableFor(filter.Kind)
	if err != nil {
		return nil, err
	}

	selectBuilder := psqlbuilder.Select(itemColumns...).
		From(table).
		OrderBy("sort_order ASC", "created_at DESC")

	if !filter.Viewer.IsAdmin() {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"is_published": true})
	}

	if filter.Category != nil {
		selectBuilder = selectBuilder.Where(squirrel.Expr("LOWER(category) = ?", strings.ToLower(*filter.Category)))
	}

	if filter.FeaturedOnly {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"is_featured": true})
	}

	if search := strings.TrimSpace(filter.Search); search != "" {
		pattern := psqlbuilder.ContainsPattern(search)
		selectBuilder = selectBuilder.Where(squirrel.Or{
			squirrel.ILike{"title": pattern},
			squirrel.ILike{"short_description": pattern},
			squirrel.ILike{"location": pattern},
		})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	items := make([]*domain.CatalogItem, 0)
	for rows.Next() {
		item, err := scanItem(rows, filter.Kind)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return items, nil
}

// GetBySlug получает позицию по slug (без учёта публикации, это решает сервис)
func (r *Repository) GetBySlug(ctx context.Context, kind domain.CatalogKind, slug string) (*domain.CatalogItem, error) {
	return r.getOne(ctx, kind, "GetBySlug", squirrel.Eq{"slug": slug})
}

// GetByID получает позицию по ID
func (r *Repository) GetByID(ctx context.Context, kind domain.CatalogKind, id int64) (*domain.CatalogItem, error) {
	return r.getOne(ctx, kind, "GetByID", squirrel.Eq{"id": id})
}

func (r *Repository) getOne(ctx context.Context, kind domain.CatalogKind, op string, where squirrel.Sqlizer) (*domain.CatalogItem, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	table, err := tableFor(kind)
	if err != nil {
		return nil, err
	}

	query, args, err := psqlbuilder.Select(itemColumns...).
		From(table).
		Where(where).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, op, err)
	}

	item, err := scanItem(executor.QueryRowContext(ctx, query, args...), kind)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrItemNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s - scan item: %v", ErrScanRow, op, err)
	}

	return item, nil
}

// Create создает новую позицию каталога
func (r *Repository) Create(ctx context.Context, item *domain.CatalogItem) (*domain.CatalogItem, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	table, err := tableFor(item.Kind)
	if err != nil {
		return nil, err
	}

	query, args, err := psqlbuilder.Insert(table).
		Columns(
			"title",
			"slug",
			"category",
			"location",
			"short_description",
			"description",
			"price",
			"duration",
			"image_url",
			"is_published",
			"is_featured",
			"sort_order",
		).
		Values(
			item.Title,
			item.Slug,
			item.Category,
			item.Location,
			item.ShortDescription,
			item.Description,
			item.Price,
			item.Duration,
			item.ImageURL,
			item.IsPublished,
			item.IsFeatured,
			item.SortOrder,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&item.ID, &createdAt, &updatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicateSlug
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	item.CreatedAt = createdAt.Time
	item.UpdatedAt = updatedAt.Time

	return item, nil
}

// Update перезаписывает редактируемые поля позиции.
// Если expectedUpdatedAt задан, обновление проходит только при совпадении updated_at,
// иначе возвращается ErrVersionConflict. Без него действует last write wins.
func (r *Repository) Update(ctx context.Context, item *domain.CatalogItem, expectedUpdatedAt *time.Time) (*domain.CatalogItem, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	table, err := tableFor(item.Kind)
	if err != nil {
		return nil, err
	}

	updateBuilder := psqlbuilder.Update(table).
		Set("title", item.Title).
		Set("slug", item.Slug).
		Set("category", item.Category).
		Set("location", item.Location).
		Set("short_description", item.ShortDescription).
		Set("description", item.Description).
		Set("price", item.Price).
		Set("duration", item.Duration).
		Set("image_url", item.ImageURL).
		Set("is_published", item.IsPublished).
		Set("is_featured", item.IsFeatured).
		Set("sort_order", item.SortOrder).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": item.ID})

	if expectedUpdatedAt != nil {
		updateBuilder = updateBuilder.Where(squirrel.Eq{"updated_at": *expectedUpdatedAt})
	}

	query, args, err := updateBuilder.Suffix("RETURNING created_at, updated_at").ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		if expectedUpdatedAt == nil {
			return nil, ErrItemNotFound
		}
		// Строка могла исчезнуть или измениться, различаем эти случаи
		if _, getErr := r.GetByID(ctx, item.Kind, item.ID); getErr != nil {
			return nil, getErr
		}
		return nil, ErrVersionConflict
	}
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicateSlug
		}
		return nil, fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	item.CreatedAt = createdAt.Time
	item.UpdatedAt = updatedAt.Time

	return item, nil
}

// TogglePublished инвертирует is_published одним UPDATE и возвращает новое значение.
// Из данных позиции меняется только флаг; updated_at сдвигается, чтобы правка
// с устаревшим expectedUpdatedAt не вернула прежнее значение флага.
func (r *Repository) TogglePublished(ctx context.Context, kind domain.CatalogKind, id int64) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	table, err := tableFor(kind)
	if err != nil {
		return false, err
	}

	query, args, err := psqlbuilder.Update(table).
		Set("is_published", squirrel.Expr("NOT is_published")).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING is_published").
		ToSql()
	if err != nil {
		return false, fmt.Errorf("%w: TogglePublished - build update query: %v", ErrBuildQuery, err)
	}

	var published bool
	err = executor.QueryRowContext(ctx, query, args...).Scan(&published)
	if errors.Is(err, sql.ErrNoRows) {
		return false, ErrItemNotFound
	}
	if err != nil {
		return false, fmt.Errorf("%w: TogglePublished - execute update: %v", ErrExecQuery, err)
	}

	return published, nil
}

// Delete физически удаляет позицию каталога
func (r *Repository) Delete(ctx context.Context, kind domain.CatalogKind, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	table, err := tableFor(kind)
	if err != nil {
		return err
	}

	query, args, err := psqlbuilder.Delete(table).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrItemNotFound
	}

	return nil
}

// Counts возвращает общее количество позиций и количество опубликованных
func (r *Repository) Counts(ctx context.Context, kind domain.CatalogKind) (domain.CatalogCounts, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	table, err := tableFor(kind)
	if err != nil {
		return domain.CatalogCounts{}, err
	}

	query, args, err := psqlbuilder.Select("COUNT(*)", "COUNT(*) FILTER (WHERE is_published)").
		From(table).
		ToSql()
	if err != nil {
		return domain.CatalogCounts{}, fmt.Errorf("%w: Counts - build select query: %v", ErrBuildQuery, err)
	}

	var counts domain.CatalogCounts
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&counts.Total, &counts.Published); err != nil {
		return domain.CatalogCounts{}, fmt.Errorf("%w: Counts - scan: %v", ErrScanRow, err)
	}

	return counts, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanItem(row rowScanner, kind domain.CatalogKind) (*domain.CatalogItem, error) {
	var (
		item                 domain.CatalogItem
		createdAt, updatedAt sql.NullTime
	)

	err := row.Scan(
		&item.ID,
		&item.Title,
		&item.Slug,
		&item.Category,
		&item.Location,
		&item.ShortDescription,
		&item.Description,
		&item.Price,
		&item.Duration,
		&item.ImageURL,
		&item.IsPublished,
		&item.IsFeatured,
		&item.SortOrder,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	item.Kind = kind
	item.CreatedAt = createdAt.Time
	item.UpdatedAt = updatedAt.Time

	return &item, nil
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == pqUniqueViolation
}
