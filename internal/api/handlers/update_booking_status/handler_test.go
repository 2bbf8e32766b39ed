package update_booking_status

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"github.com/m04kA/tours-service/internal/api/middleware"
	"github.com/m04kA/tours-service/internal/domain"
	"github.com/m04kA/tours-service/internal/service/bookings"
	"github.com/m04kA/tours-service/internal/service/bookings/models"
	"github.com/m04kA/tours-service/pkg/logger"
)

type fakeService struct {
	err error
}

func (f *fakeService) UpdateStatus(_ context.Context, id int64, req *models.UpdateStatusRequest) (*models.BookingResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &models.BookingResponse{ID: id, Status: req.Status}, nil
}

func serve(h *Handler, id, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPatch, "/api/v1/admin/bookings/"+id+"/status", strings.NewReader(body))
	req = mux.SetURLVars(req, map[string]string{"bookingId": id})
	req = req.WithContext(middleware.WithViewer(req.Context(), domain.Admin(1)))
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandle(t *testing.T) {
	rec := serve(NewHandler(&fakeService{}, logger.NewNop()), "5", `{"status":"confirmed"}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"confirmed"`)

	tests := []struct {
		name string
		id   string
		err  error
		want int
	}{
		{"bad id", "abc", nil, http.StatusBadRequest},
		{"bad status", "5", bookings.ErrInvalidStatus, http.StatusBadRequest},
		{"missing", "5", bookings.ErrBookingNotFound, http.StatusNotFound},
		{"strict transition", "5", bookings.ErrTransitionNotAllowed, http.StatusConflict},
		{"internal", "5", bookings.ErrInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(NewHandler(&fakeService{err: tt.err}, logger.NewNop()), tt.id, `{"status":"confirmed"}`)
			assert.Equal(t, tt.want, rec.Code)
		})
	}
}
