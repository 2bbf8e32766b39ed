package functions

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/tours-service/pkg/logger"
)

func TestClient_SendBookingEmail_Success(t *testing.T) {
	var received BookingEmail

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/functions/v1/send-booking-email", r.URL.Path)
		assert.Equal(t, "Bearer key", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"ok":true}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL+"/", "key", time.Second, logger.NewNop())

	err := client.SendBookingEmail(context.Background(), BookingEmail{
		CustomerName:   "Jane Doe",
		CustomerEmail:  "jane@example.com",
		TourName:       "Custom Trip Plan",
		NumberOfGuests: 2,
	})
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", received.CustomerName)
	assert.Equal(t, 2, received.NumberOfGuests)
}

func TestClient_SendBookingEmail_SurfacesFunctionMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":"Mail provider rejected the recipient"}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "", time.Second, logger.NewNop())

	err := client.SendBookingEmail(context.Background(), BookingEmail{})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrFunctionFailed)

	msg, ok := IsFunctionError(err)
	require.True(t, ok)
	assert.Equal(t, "Mail provider rejected the recipient", msg)
}

func TestClient_SendBookingEmail_PlainTextError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream timeout", http.StatusBadGateway)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "", time.Second, logger.NewNop())

	msg, ok := IsFunctionError(client.SendBookingEmail(context.Background(), BookingEmail{}))
	require.True(t, ok)
	assert.Equal(t, "upstream timeout", msg)
}

func TestClient_NotConfigured(t *testing.T) {
	client := NewClient("", "", time.Second, logger.NewNop())
	assert.ErrorIs(t, client.SendBookingEmail(context.Background(), BookingEmail{}), ErrNotConfigured)
}
