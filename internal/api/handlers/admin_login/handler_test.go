package admin_login

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/tours-service/internal/service/auth"
	"github.com/m04kA/tours-service/internal/service/auth/models"
	"github.com/m04kA/tours-service/pkg/logger"
)

type fakeService struct{}

func (fakeService) Login(_ context.Context, req *models.LoginRequest) (*models.LoginResponse, error) {
	if req.Email == "" {
		return nil, auth.ErrInvalidInput
	}
	if req.Password != "secret" {
		return nil, auth.ErrInvalidCredentials
	}
	return &models.LoginResponse{
		Token:     "jwt",
		ExpiresAt: time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC),
		Admin:     models.AdminProfile{ID: 1, Email: req.Email},
	}, nil
}

func serve(body string) *httptest.ResponseRecorder {
	h := NewHandler(fakeService{}, logger.NewNop())
	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodPost, "/api/v1/admin/login", strings.NewReader(body)))
	return rec
}

func TestHandle(t *testing.T) {
	rec := serve(`{"email":"admin@example.com","password":"secret"}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"token":"jwt"`)

	rec = serve(`{"email":"admin@example.com","password":"wrong"}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"error":"Invalid email or password"}`, rec.Body.String())

	assert.Equal(t, http.StatusBadRequest, serve(`{"password":"secret"}`).Code)
	assert.Equal(t, http.StatusBadRequest, serve(`not json`).Code)
}
