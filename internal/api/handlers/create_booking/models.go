package create_booking

import (
	"time"

	"github.com/m04kA/tours-service/internal/domain"
	createBooking "github.com/m04kA/tours-service/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	ItemKind        string  `json:"itemKind"` // tour, activity, transfer
	ItemID          int64   `json:"itemId"`
	CustomerName    string  `json:"customerName"`
	CustomerEmail   string  `json:"customerEmail"`
	CustomerPhone   *string `json:"customerPhone,omitempty"`
	TravelDate      string  `json:"travelDate"` // "2026-10-15"
	NumberOfGuests  int     `json:"numberOfGuests"`
	SpecialRequests *string `json:"specialRequests,omitempty"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID             int64   `json:"id"`
	TrackingCode   string  `json:"trackingCode"`
	ItemKind       string  `json:"itemKind"`
	ItemID         int64   `json:"itemId"`
	ItemTitle      string  `json:"itemTitle"`
	CustomerName   string  `json:"customerName"`
	CustomerEmail  string  `json:"customerEmail"`
	TravelDate     string  `json:"travelDate"`
	NumberOfGuests int     `json:"numberOfGuests"`
	Status         string  `json:"status"`
	TotalPrice     float64 `json:"totalPrice"`
	EmailSent      bool    `json:"emailSent"`
	CreatedAt      string  `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest() (*createBooking.Request, error) {
	travelDate, err := time.Parse(domain.DateFormat, r.TravelDate)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		ItemKind:        r.ItemKind,
		ItemID:          r.ItemID,
		CustomerName:    r.CustomerName,
		CustomerEmail:   r.CustomerEmail,
		CustomerPhone:   r.CustomerPhone,
		TravelDate:      travelDate,
		NumberOfGuests:  r.NumberOfGuests,
		SpecialRequests: r.SpecialRequests,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP модель
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:             resp.ID,
		TrackingCode:   resp.TrackingCode,
		ItemKind:       resp.ItemKind,
		ItemID:         resp.ItemID,
		ItemTitle:      resp.ItemTitle,
		CustomerName:   resp.CustomerName,
		CustomerEmail:  resp.CustomerEmail,
		TravelDate:     resp.TravelDate.Format(domain.DateFormat),
		NumberOfGuests: resp.NumberOfGuests,
		Status:         resp.Status,
		TotalPrice:     resp.TotalPrice,
		EmailSent:      resp.EmailSent,
		CreatedAt:      resp.CreatedAt.Format(time.RFC3339),
	}
}
