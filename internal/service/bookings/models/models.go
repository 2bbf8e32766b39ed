package models

import (
	"time"

	"github.com/m04kA/tours-service/internal/domain"
)

// Request модели

// ListBookingsRequest фильтр списка бронирований в админке
type ListBookingsRequest struct {
	Status *string
	Search string
	Limit  int
	Offset int
}

// UpdateStatusRequest запрос на смену статуса
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// Response модели

// BookingResponse полные данные бронирования (админка)
type BookingResponse struct {
	ID              int64                     `json:"id"`
	TrackingCode    string                    `json:"trackingCode"`
	ItemKind        string                    `json:"itemKind"`
	ItemID          *int64                    `json:"itemId,omitempty"`
	ItemTitle       string                    `json:"itemTitle"`
	CustomerName    string                    `json:"customerName"`
	CustomerEmail   string                    `json:"customerEmail"`
	CustomerPhone   *string                   `json:"customerPhone,omitempty"`
	TravelDate      string                    `json:"travelDate"` // "2026-10-15"
	NumberOfGuests  int                       `json:"numberOfGuests"`
	SpecialRequests *string                   `json:"specialRequests,omitempty"`
	Status          string                    `json:"status"`
	Presentation    domain.StatusPresentation `json:"presentation"`
	TotalPrice      float64                   `json:"totalPrice"`
	CreatedAt       time.Time                 `json:"createdAt"`
	UpdatedAt       time.Time                 `json:"updatedAt"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// TrackedBooking поля, которые видит клиент на странице трекинга
type TrackedBooking struct {
	TrackingCode    string  `json:"trackingCode"`
	ItemTitle       string  `json:"itemTitle"`
	CustomerName    string  `json:"customerName"`
	TravelDate      string  `json:"travelDate"`
	NumberOfGuests  int     `json:"numberOfGuests"`
	SpecialRequests *string `json:"specialRequests,omitempty"`
	Status          string  `json:"status"`
	TotalPrice      float64 `json:"totalPrice"`
}

// TrackResult результат поиска по трекинг-коду.
// Found=false означает обычный результат "не найдено", а не ошибку.
type TrackResult struct {
	Found            bool                       `json:"found"`
	TrackingCode     string                     `json:"trackingCode"`
	Booking          *TrackedBooking            `json:"booking,omitempty"`
	Presentation     *domain.StatusPresentation `json:"presentation,omitempty"`
	VoucherAvailable bool                       `json:"voucherAvailable"`
}

// Voucher готовый PDF
type Voucher struct {
	FileName string
	Content  []byte
}

// Методы конвертации

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	return &BookingResponse{
		ID:              b.ID,
		TrackingCode:    b.TrackingCode,
		ItemKind:        string(b.ItemKind),
		ItemID:          b.ItemID,
		ItemTitle:       b.ItemTitle,
		CustomerName:    b.CustomerName,
		CustomerEmail:   b.CustomerEmail,
		CustomerPhone:   b.CustomerPhone,
		TravelDate:      b.TravelDate.Format(domain.DateFormat),
		NumberOfGuests:  b.NumberOfGuests,
		SpecialRequests: b.SpecialRequests,
		Status:          string(b.Status),
		Presentation:    domain.PresentStatus(b.Status),
		TotalPrice:      b.TotalPrice,
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.UpdatedAt,
	}
}

// FromDomainBookingList конвертирует список domain моделей в DTO
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, 0, len(bookings)),
	}

	for _, b := range bookings {
		if r := FromDomainBooking(b); r != nil {
			resp.Bookings = append(resp.Bookings, *r)
		}
	}

	return resp
}

// ToTrackResult проецирует бронирование на поля страницы трекинга
func ToTrackResult(code string, b *domain.Booking) *TrackResult {
	if b == nil {
		return &TrackResult{Found: false, TrackingCode: code}
	}

	presentation := domain.PresentStatus(b.Status)
	return &TrackResult{
		Found:        true,
		TrackingCode: b.TrackingCode,
		Booking: &TrackedBooking{
			TrackingCode:    b.TrackingCode,
			ItemTitle:       b.ItemTitle,
			CustomerName:    b.CustomerName,
			TravelDate:      b.TravelDate.Format(domain.DateFormat),
			NumberOfGuests:  b.NumberOfGuests,
			SpecialRequests: b.SpecialRequests,
			Status:          string(b.Status),
			TotalPrice:      b.TotalPrice,
		},
		Presentation:     &presentation,
		VoucherAvailable: b.VoucherAvailable(),
	}
}

// ToDomainBookingStatus конвертирует строку в domain.BookingStatus с валидацией
func ToDomainBookingStatus(status string) (domain.BookingStatus, bool) {
	s := domain.BookingStatus(status)
	return s, s.IsKnown()
}
