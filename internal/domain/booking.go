package domain

import "time"

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCancelled BookingStatus = "cancelled"
	StatusCompleted BookingStatus = "completed"
)

// Booking represents a customer booking of a catalog item
type Booking struct {
	ID           int64
	TrackingCode string

	// Забронированная позиция каталога (денормализовано для истории)
	ItemKind  CatalogKind
	ItemID    *int64
	ItemTitle string

	CustomerName    string
	CustomerEmail   string
	CustomerPhone   *string
	TravelDate      time.Time
	NumberOfGuests  int
	SpecialRequests *string

	Status     BookingStatus
	TotalPrice float64

	CreatedAt time.Time
	UpdatedAt time.Time
}

// VoucherAvailable returns true if a voucher may be generated for the booking
func (b *Booking) VoucherAvailable() bool {
	return b.Status == StatusConfirmed || b.Status == StatusCompleted
}

// IsKnown returns true if the status is one of the supported values
func (s BookingStatus) IsKnown() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled, StatusCompleted:
		return true
	default:
		return false
	}
}

// BookingsFilter фильтр для списка бронирований в админке
type BookingsFilter struct {
	Status *BookingStatus // nil - все статусы
	Search string        // имя, email или трекинг-код
	Limit  int
	Offset int
}
