package create_booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/tours-service/internal/domain"
	bookingRepo "github.com/m04kA/tours-service/internal/infra/storage/booking"
	catalogRepo "github.com/m04kA/tours-service/internal/infra/storage/catalog"
	"github.com/m04kA/tours-service/internal/integrations/functions"
	"github.com/m04kA/tours-service/pkg/logger"
	"github.com/m04kA/tours-service/pkg/ptr"
)

type fakeBookings struct {
	taken   map[string]bool
	created []*domain.Booking
	err     error
}

func (f *fakeBookings) Create(_ context.Context, b *domain.Booking) (*domain.Booking, error) {
	if f.err != nil {
		return nil, f.err
	}
	if f.taken[b.TrackingCode] {
		return nil, bookingRepo.ErrDuplicateTrackingCode
	}
	cp := *b
	cp.ID = int64(len(f.created) + 1)
	cp.CreatedAt = time.Now()
	f.created = append(f.created, &cp)
	return &cp, nil
}

type fakeCatalog struct {
	items map[int64]*domain.CatalogItem
}

func (f *fakeCatalog) GetByID(_ context.Context, kind domain.CatalogKind, id int64) (*domain.CatalogItem, error) {
	it, ok := f.items[id]
	if !ok || it.Kind != kind {
		return nil, catalogRepo.ErrItemNotFound
	}
	return it, nil
}

type seqCodes struct {
	codes []string
	i     int
}

func (s *seqCodes) Generate() (string, error) {
	if s.i >= len(s.codes) {
		return s.codes[len(s.codes)-1], nil
	}
	c := s.codes[s.i]
	s.i++
	return c, nil
}

type fakeNotifier struct {
	sent []functions.BookingEmail
	err  error
}

func (f *fakeNotifier) SendBookingEmail(_ context.Context, p functions.BookingEmail) error {
	f.sent = append(f.sent, p)
	return f.err
}

type fixedTime struct{ t time.Time }

func (f fixedTime) Now() time.Time { return f.t }

var now = time.Date(2026, 10, 18, 15, 0, 0, 0, time.UTC)

func newCatalog() *fakeCatalog {
	return &fakeCatalog{items: map[int64]*domain.CatalogItem{
		1: {ID: 1, Kind: domain.KindTour, Title: "Serengeti Safari", Price: 450, IsPublished: true},
		2: {ID: 2, Kind: domain.KindTour, Title: "Hidden Draft", Price: 100, IsPublished: false},
	}}
}

func validRequest() *Request {
	return &Request{
		ItemKind:        "Tour",
		ItemID:          1,
		CustomerName:    " Jane Doe ",
		CustomerEmail:   "jane@example.com",
		CustomerPhone:   ptr.Ptr("  "),
		TravelDate:      time.Date(2026, 10, 18, 0, 0, 0, 0, time.UTC),
		NumberOfGuests:  3,
		SpecialRequests: ptr.Ptr(" Vegetarian "),
	}
}

func newUseCase(bookings *fakeBookings, codes CodeGenerator, notifier Notifier, notify bool) *UseCase {
	uc := NewUseCase(bookings, newCatalog(), codes, notifier, notify, logger.NewNop())
	uc.timeProvider = fixedTime{now}
	return uc
}

func TestExecute_Success(t *testing.T) {
	bookings := &fakeBookings{}
	notifier := &fakeNotifier{}
	uc := newUseCase(bookings, &seqCodes{codes: []string{"IV-ABC234"}}, notifier, true)

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, "IV-ABC234", resp.TrackingCode)
	assert.Equal(t, "pending", resp.Status)
	assert.Equal(t, "tour", resp.ItemKind)
	assert.Equal(t, "Serengeti Safari", resp.ItemTitle)
	assert.Equal(t, 1350.0, resp.TotalPrice)
	assert.True(t, resp.EmailSent)

	require.Len(t, bookings.created, 1)
	stored := bookings.created[0]
	assert.Equal(t, "Jane Doe", stored.CustomerName)
	assert.Nil(t, stored.CustomerPhone)
	assert.Equal(t, "Vegetarian", *stored.SpecialRequests)

	require.Len(t, notifier.sent, 1)
	assert.Equal(t, 3, notifier.sent[0].NumberOfGuests)
	assert.Equal(t, "2026-10-18", notifier.sent[0].TravelDate)
	assert.Contains(t, notifier.sent[0].TourName, "IV-ABC234")
}

func TestExecute_RetriesOnCodeCollision(t *testing.T) {
	bookings := &fakeBookings{taken: map[string]bool{"IV-AAAAAA": true, "IV-BBBBBB": true}}
	uc := newUseCase(bookings, &seqCodes{codes: []string{"IV-AAAAAA", "IV-BBBBBB", "IV-CCCCCC"}}, nil, false)

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Equal(t, "IV-CCCCCC", resp.TrackingCode)
	assert.False(t, resp.EmailSent)
}

func TestExecute_CodeExhausted(t *testing.T) {
	bookings := &fakeBookings{taken: map[string]bool{"IV-AAAAAA": true}}
	uc := newUseCase(bookings, &seqCodes{codes: []string{"IV-AAAAAA"}}, nil, false)

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrTrackingCodeExhausted)
}

func TestExecute_NotificationFailureDoesNotFail(t *testing.T) {
	bookings := &fakeBookings{}
	notifier := &fakeNotifier{err: errors.New("smtp down")}
	uc := newUseCase(bookings, &seqCodes{codes: []string{"IV-ABC234"}}, notifier, true)

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
	assert.False(t, resp.EmailSent)
	assert.Len(t, bookings.created, 1)
}

func TestExecute_Rejections(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(r *Request)
		wantErr error
	}{
		{"unknown kind", func(r *Request) { r.ItemKind = "cruise" }, ErrInvalidInput},
		{"no item", func(r *Request) { r.ItemID = 0 }, ErrInvalidInput},
		{"no name", func(r *Request) { r.CustomerName = "  " }, ErrInvalidInput},
		{"bad email", func(r *Request) { r.CustomerEmail = "not-an-email" }, ErrInvalidInput},
		{"email with display name", func(r *Request) { r.CustomerEmail = "Jane <jane@example.com>" }, ErrInvalidInput},
		{"no date", func(r *Request) { r.TravelDate = time.Time{} }, ErrInvalidInput},
		{"zero guests", func(r *Request) { r.NumberOfGuests = 0 }, ErrInvalidInput},
		{"too many guests", func(r *Request) { r.NumberOfGuests = domain.MaxGuests + 1 }, ErrInvalidInput},
		{"past date", func(r *Request) { r.TravelDate = now.AddDate(0, 0, -1) }, ErrInvalidDate},
		{"missing item", func(r *Request) { r.ItemID = 99 }, ErrItemNotFound},
		{"unpublished item", func(r *Request) { r.ItemID = 2 }, ErrItemNotFound},
		{"kind mismatch", func(r *Request) { r.ItemKind = "activity" }, ErrItemNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bookings := &fakeBookings{}
			uc := newUseCase(bookings, &seqCodes{codes: []string{"IV-ABC234"}}, nil, false)

			req := validRequest()
			tt.mutate(req)

			_, err := uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Empty(t, bookings.created)
		})
	}
}

func TestExecute_RepositoryError(t *testing.T) {
	bookings := &fakeBookings{err: errors.New("insert failed")}
	uc := newUseCase(bookings, &seqCodes{codes: []string{"IV-ABC234"}}, nil, false)

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrInternal)
}
