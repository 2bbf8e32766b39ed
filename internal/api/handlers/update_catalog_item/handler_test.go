package update_catalog_item

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"github.com/m04kA/tours-service/internal/service/catalog"
	"github.com/m04kA/tours-service/internal/service/catalog/models"
	"github.com/m04kA/tours-service/pkg/logger"
)

type fakeService struct {
	err   error
	calls int
}

func (f *fakeService) Update(_ context.Context, kind string, id int64, req *models.ItemRequest) (*models.ItemResponse, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return &models.ItemResponse{ID: id, Kind: kind, Title: req.Title, Slug: req.Slug}, nil
}

const body = `{"title":"Serengeti Migration","slug":"serengeti","category":"safari","price":2400}`

func serve(h *Handler, kind, id, payload string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPut, "/api/v1/admin/"+kind+"/"+id, strings.NewReader(payload))
	req = mux.SetURLVars(req, map[string]string{"kind": kind, "id": id})
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandle_Updates(t *testing.T) {
	h := NewHandler(&fakeService{}, logger.NewNop())

	rec := serve(h, "tours", "3", body)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"title":"Serengeti Migration"`)
}

func TestHandle_ErrorMapping(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantBody string
	}{
		{"version conflict", catalog.ErrVersionConflict, http.StatusConflict, msgVersionConflict},
		{"duplicate slug", catalog.ErrDuplicateSlug, http.StatusConflict, msgDuplicateSlug},
		{"not found", catalog.ErrItemNotFound, http.StatusNotFound, msgNotFound},
		{"invalid input", catalog.ErrInvalidInput, http.StatusBadRequest, ""},
		{"unexpected", errors.New("db down"), http.StatusInternalServerError, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHandler(&fakeService{err: tt.err}, logger.NewNop())

			rec := serve(h, "tours", "3", body)

			assert.Equal(t, tt.wantCode, rec.Code)
			if tt.wantBody != "" {
				assert.Contains(t, rec.Body.String(), tt.wantBody)
			}
		})
	}
}

func TestHandle_RejectsBadRequestsBeforeService(t *testing.T) {
	svc := &fakeService{}
	h := NewHandler(svc, logger.NewNop())

	assert.Equal(t, http.StatusBadRequest, serve(h, "tours", "abc", body).Code)
	assert.Equal(t, http.StatusBadRequest, serve(h, "tours", "3", `{"title":`).Code)
	assert.Equal(t, http.StatusBadRequest, serve(h, "tours", "3", `{"unknown":1}`).Code)
	assert.Equal(t, http.StatusNotFound, serve(h, "cruises", "3", body).Code)
	assert.Zero(t, svc.calls)
}
