package download_voucher

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"github.com/m04kA/tours-service/internal/service/bookings"
	"github.com/m04kA/tours-service/internal/service/bookings/models"
	"github.com/m04kA/tours-service/pkg/logger"
)

type fakeService struct {
	voucher *models.Voucher
	err     error
}

func (f *fakeService) Voucher(_ context.Context, _ string) (*models.Voucher, error) {
	return f.voucher, f.err
}

func serve(h *Handler) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/bookings/track/IV-TEST01/voucher", nil)
	req = mux.SetURLVars(req, map[string]string{"code": "IV-TEST01"})
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandle_ServesPDF(t *testing.T) {
	content := []byte("%PDF-1.3 test")
	h := NewHandler(&fakeService{voucher: &models.Voucher{FileName: "voucher-IV-TEST01.pdf", Content: content}}, logger.NewNop())

	rec := serve(h)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/pdf", rec.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="voucher-IV-TEST01.pdf"`, rec.Header().Get("Content-Disposition"))
	assert.Equal(t, content, rec.Body.Bytes())
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"not found", bookings.ErrBookingNotFound, http.StatusNotFound},
		{"pending booking", bookings.ErrVoucherNotAvailable, http.StatusConflict},
		{"render failure", bookings.ErrInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(NewHandler(&fakeService{err: tt.err}, logger.NewNop()))
			assert.Equal(t, tt.want, rec.Code)
			assert.NotEqual(t, "application/pdf", rec.Header().Get("Content-Type"))
		})
	}
}
