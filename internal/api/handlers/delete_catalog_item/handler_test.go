package delete_catalog_item

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"github.com/m04kA/tours-service/internal/service/catalog"
	"github.com/m04kA/tours-service/pkg/logger"
)

type fakeService struct {
	err     error
	deleted []int64
}

func (f *fakeService) Delete(_ context.Context, _ string, id int64) error {
	if f.err != nil {
		return f.err
	}
	f.deleted = append(f.deleted, id)
	return nil
}

func serve(h *Handler, kind, id string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodDelete, "/api/v1/admin/"+kind+"/"+id, nil)
	req = mux.SetURLVars(req, map[string]string{"kind": kind, "id": id})
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandle_Deletes(t *testing.T) {
	svc := &fakeService{}
	h := NewHandler(svc, logger.NewNop())

	rec := serve(h, "activities", "8")

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
	assert.Equal(t, []int64{8}, svc.deleted)
}

func TestHandle_NotFound(t *testing.T) {
	h := NewHandler(&fakeService{err: catalog.ErrItemNotFound}, logger.NewNop())

	rec := serve(h, "tours", "8")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), msgNotFound)
}

func TestHandle_Failures(t *testing.T) {
	svc := &fakeService{}
	h := NewHandler(svc, logger.NewNop())
	assert.Equal(t, http.StatusBadRequest, serve(h, "tours", "x").Code)
	assert.Equal(t, http.StatusNotFound, serve(h, "cruises", "8").Code)
	assert.Empty(t, svc.deleted)

	h = NewHandler(&fakeService{err: errors.New("db down")}, logger.NewNop())
	assert.Equal(t, http.StatusInternalServerError, serve(h, "tours", "8").Code)
}
