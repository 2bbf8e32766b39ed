package catalog

import (
	"context"
	"database/sql/driver"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/tours-service/internal/domain"
	"github.com/m04kA/tours-service/pkg/dbmetrics"
)

func newRepo(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return NewRepository(dbmetrics.Wrap(db, nil)), mock
}

func itemRow(id int64, slug string, published bool) []driver.Value {
	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	return []driver.Value{
		id, "Ngorongoro Crater Day Trip", slug, "safari", "Arusha", "Crater floor game drive", nil,
		350.0, "1 day", nil, published, false, int64(0), now, now,
	}
}

func TestRepository_List_VisitorSeesOnlyPublished(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM tours WHERE is_published = $1 ORDER BY sort_order ASC, created_at DESC")).
		WithArgs(true).
		WillReturnRows(sqlmock.NewRows(itemColumns).AddRow(itemRow(1, "ngorongoro", true)...))

	items, err := repo.List(context.Background(), domain.CatalogFilter{Kind: domain.KindTour, Viewer: domain.Visitor})
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, domain.KindTour, items[0].Kind)
	assert.Equal(t, "ngorongoro", items[0].Slug)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_List_AdminSeesDrafts(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, title, slug, category, location, short_description, description, price, duration, image_url, is_published, is_featured, sort_order, created_at, updated_at FROM activities ORDER BY")).
		WillReturnRows(sqlmock.NewRows(itemColumns).
			AddRow(itemRow(1, "spice-tour", true)...).
			AddRow(itemRow(2, "prison-island", false)...))

	items, err := repo.List(context.Background(), domain.CatalogFilter{Kind: domain.KindActivity, Viewer: domain.Admin(1)})
	require.NoError(t, err)
	assert.Len(t, items, 2)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_List_CategoryIgnoresCase(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM tours WHERE is_published = $1 AND LOWER(category) = $2 ORDER BY")).
		WithArgs(true, "safari").
		WillReturnRows(sqlmock.NewRows(itemColumns).AddRow(itemRow(1, "ngorongoro", true)...))

	category := "Safari"
	items, err := repo.List(context.Background(), domain.CatalogFilter{Kind: domain.KindTour, Viewer: domain.Visitor, Category: &category})
	require.NoError(t, err)
	assert.Len(t, items, 1)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_List_UnknownKind(t *testing.T) {
	repo, _ := newRepo(t)

	_, err := repo.List(context.Background(), domain.CatalogFilter{Kind: "cruise"})
	assert.ErrorIs(t, err, ErrUnknownKind)
}

func TestRepository_TogglePublished_FlipsFlagAndBumpsUpdatedAt(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("UPDATE transfers SET is_published = NOT is_published, updated_at = NOW() WHERE id = $1 RETURNING is_published")).
		WithArgs(int64(5)).
		WillReturnRows(sqlmock.NewRows([]string{"is_published"}).AddRow(true))

	published, err := repo.TogglePublished(context.Background(), domain.KindTransfer, 5)
	require.NoError(t, err)
	assert.True(t, published)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_TogglePublished_NotFound(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectQuery("UPDATE tours").WillReturnRows(sqlmock.NewRows([]string{"is_published"}))

	_, err := repo.TogglePublished(context.Background(), domain.KindTour, 42)
	assert.ErrorIs(t, err, ErrItemNotFound)
}

func TestRepository_Update_VersionConflict(t *testing.T) {
	repo, mock := newRepo(t)
	expected := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta("UPDATE tours SET")).
		WillReturnRows(sqlmock.NewRows([]string{"created_at", "updated_at"}))
	mock.ExpectQuery(regexp.QuoteMeta("FROM tours WHERE id = $1")).
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows(itemColumns).AddRow(itemRow(1, "ngorongoro", true)...))

	item := &domain.CatalogItem{ID: 1, Kind: domain.KindTour, Title: "New title", Slug: "ngorongoro"}
	_, err := repo.Update(context.Background(), item, &expected)
	assert.ErrorIs(t, err, ErrVersionConflict)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Create_DuplicateSlug(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO tours")).WillReturnError(&pq.Error{Code: "23505"})

	_, err := repo.Create(context.Background(), &domain.CatalogItem{Kind: domain.KindTour, Title: "A", Slug: "a"})
	assert.ErrorIs(t, err, ErrDuplicateSlug)
}

func TestRepository_Delete(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM activities WHERE id = $1")).
		WithArgs(int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	require.NoError(t, repo.Delete(context.Background(), domain.KindActivity, 3))

	mock.ExpectExec("DELETE FROM activities").WillReturnResult(sqlmock.NewResult(0, 0))
	assert.ErrorIs(t, repo.Delete(context.Background(), domain.KindActivity, 3), ErrItemNotFound)
}

func TestRepository_Counts(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*), COUNT(*) FILTER (WHERE is_published) FROM tours")).
		WillReturnRows(sqlmock.NewRows([]string{"total", "published"}).AddRow(int64(8), int64(5)))

	counts, err := repo.Counts(context.Background(), domain.KindTour)
	require.NoError(t, err)
	assert.Equal(t, domain.CatalogCounts{Total: 8, Published: 5}, counts)
}

func TestRepository_List_SearchEscapesLikeWildcards(t *testing.T) {
	repo, mock := newRepo(t)

	pattern := `%100\%%`
	mock.ExpectQuery(regexp.QuoteMeta("AND (title ILIKE $2 OR short_description ILIKE $3 OR location ILIKE $4) ORDER BY")).
		WithArgs(true, pattern, pattern, pattern).
		WillReturnRows(sqlmock.NewRows(itemColumns))

	items, err := repo.List(context.Background(), domain.CatalogFilter{Kind: domain.KindTour, Viewer: domain.Visitor, Search: "100%"})
	require.NoError(t, err)
	assert.Empty(t, items)
	require.NoError(t, mock.ExpectationsWereMet())
}
