package admin

import (
	"context"
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

func TestRepository_GetByEmail(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(dbmetrics.Wrap(db, nil))
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, email, password_hash, full_name, is_active, created_at FROM admin_users WHERE email = $1")).
		WithArgs("admin@example.com").
		WillReturnRows(sqlmock.NewRows([]string{"id", "email", "password_hash", "full_name", "is_active", "created_at"}).
			AddRow(1, "admin@example.com", "$2a$10$hash", "Admin", true, now))

	a, err := repo.GetByEmail(context.Background(), "  Admin@Example.com ")
	require.NoError(t, err)
	assert.Equal(t, int64(1), a.ID)
	assert.True(t, a.IsActive)

	mock.ExpectQuery(regexp.QuoteMeta("FROM admin_users")).
		WithArgs("nobody@example.com").
		WillReturnRows(sqlmock.NewRows([]string{"id", "email", "password_hash", "full_name", "is_active", "created_at"}))

	_, err = repo.GetByEmail(context.Background(), "nobody@example.com")
	assert.ErrorIs(t, err, ErrAdminNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(dbmetrics.Wrap(db, nil))
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO admin_users (email,password_hash,full_name,is_active) VALUES ($1,$2,$3,$4) RETURNING id, created_at")).
		WithArgs("admin@example.com", "hash", "Admin", true).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(5, now))

	created, err := repo.Create(context.Background(), &domain.AdminUser{
		Email:        "ADMIN@example.com",
		PasswordHash: "hash",
		FullName:     "Admin",
		IsActive:     true,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(5), created.ID)
	assert.Equal(t, "admin@example.com", created.Email)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO admin_users")).
		WillReturnError(&pq.Error{Code: "23505"})

	_, err = repo.Create(context.Background(), &domain.AdminUser{Email: "admin@example.com", PasswordHash: "hash"})
	assert.ErrorIs(t, err, ErrDuplicateEmail)
	require.NoError(t, mock.ExpectationsWereMet())
}
