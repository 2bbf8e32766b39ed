package get_booking

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"github.com/m04kA/tours-service/internal/service/bookings"
	"github.com/m04kA/tours-service/internal/service/bookings/models"
	"github.com/m04kA/tours-service/pkg/logger"
)

// fakeService знает только бронирование с id=7
type fakeService struct {
	err   error
	calls int
}

func (f *fakeService) GetByID(_ context.Context, id int64) (*models.BookingResponse, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	if id != 7 {
		return nil, fmt.Errorf("%w: id=%d", bookings.ErrBookingNotFound, id)
	}
	return &models.BookingResponse{ID: id, TrackingCode: "IV-TEST01", Status: "pending"}, nil
}

func serve(h *Handler, id string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/bookings/"+id, nil)
	req = mux.SetURLVars(req, map[string]string{"bookingId": id})
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandle_Found(t *testing.T) {
	h := NewHandler(&fakeService{}, logger.NewNop())

	rec := serve(h, "7")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"trackingCode":"IV-TEST01"`)
}

func TestHandle_NotFound(t *testing.T) {
	h := NewHandler(&fakeService{}, logger.NewNop())

	rec := serve(h, "8")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), msgNotFound)
}

func TestHandle_InvalidID(t *testing.T) {
	svc := &fakeService{}
	h := NewHandler(svc, logger.NewNop())

	rec := serve(h, "IV-TEST01")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), msgInvalidBookingID)
	assert.Zero(t, svc.calls)
}

func TestHandle_ServiceFailure(t *testing.T) {
	h := NewHandler(&fakeService{err: errors.New("db down")}, logger.NewNop())
	assert.Equal(t, http.StatusInternalServerError, serve(h, "7").Code)
}
