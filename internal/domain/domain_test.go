package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPresentStatus_KnownStatuses(t *testing.T) {
	assert.Equal(t, "Confirmed", PresentStatus(StatusConfirmed).Label)
	assert.Equal(t, "red", PresentStatus(StatusCancelled).Color)
	assert.Equal(t, "blue", PresentStatus(StatusCompleted).Color)
}

func TestPresentStatus_UnknownFallsBackToPending(t *testing.T) {
	pending := PresentStatus(StatusPending)

	for _, s := range []BookingStatus{"", "refunded", "CONFIRMED", "on_hold"} {
		assert.Equal(t, pending, PresentStatus(s), "status %q", s)
	}
}

func TestBooking_VoucherAvailable(t *testing.T) {
	cases := map[BookingStatus]bool{
		StatusPending:   false,
		StatusConfirmed: true,
		StatusCancelled: false,
		StatusCompleted: true,
		"unknown":       false,
	}

	for status, want := range cases {
		b := &Booking{Status: status}
		assert.Equal(t, want, b.VoucherAvailable(), "status %q", status)
	}
}

func TestCanTransition(t *testing.T) {
	assert.True(t, CanTransition(StatusPending, StatusConfirmed))
	assert.True(t, CanTransition(StatusPending, StatusCancelled))
	assert.True(t, CanTransition(StatusConfirmed, StatusCompleted))
	assert.True(t, CanTransition(StatusConfirmed, StatusCancelled))
	assert.True(t, CanTransition(StatusCompleted, StatusCompleted))

	assert.False(t, CanTransition(StatusCancelled, StatusCompleted))
	assert.False(t, CanTransition(StatusPending, StatusCompleted))
	assert.False(t, CanTransition(StatusCompleted, StatusPending))
}

func TestNormalizeTrackingCode(t *testing.T) {
	assert.Equal(t, "IV-ABC123", NormalizeTrackingCode("  iv-abc123 "))
	assert.Equal(t, NormalizeTrackingCode("IV-ABC123"), NormalizeTrackingCode("iv-abc123"))
}

func TestCatalogItem_VisibleTo(t *testing.T) {
	draft := &CatalogItem{IsPublished: false}
	assert.False(t, draft.VisibleTo(Visitor))
	assert.True(t, draft.VisibleTo(Admin(1)))

	published := &CatalogItem{IsPublished: true}
	assert.True(t, published.VisibleTo(Visitor))
}

func TestTripRequest_Nights(t *testing.T) {
	arrival := time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC)
	departure := time.Date(2026, 7, 8, 0, 0, 0, 0, time.UTC)

	req := &TripRequest{ArrivalDate: &arrival, DepartureDate: &departure, Adults: 2, Children: 1}
	assert.Equal(t, 7, req.Nights())
	assert.Equal(t, 3, req.Guests())

	req.DepartureDate = nil
	assert.Equal(t, 0, req.Nights())
}
