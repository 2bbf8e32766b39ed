package models

import (
	"time"

	"github.com/m04kA/tours-service/internal/domain"
)

// CatalogCounts счётчики одного типа каталога
type CatalogCounts struct {
	Total     int `json:"total"`
	Published int `json:"published"`
}

// RecentBooking строка блока "последние бронирования"
type RecentBooking struct {
	ID           int64                     `json:"id"`
	TrackingCode string                    `json:"trackingCode"`
	CustomerName string                    `json:"customerName"`
	ItemTitle    string                    `json:"itemTitle"`
	TravelDate   string                    `json:"travelDate"`
	Status       string                    `json:"status"`
	Presentation domain.StatusPresentation `json:"presentation"`
	TotalPrice   float64                   `json:"totalPrice"`
	CreatedAt    time.Time                 `json:"createdAt"`
}

// StatsResponse данные главной страницы админки
type StatsResponse struct {
	Catalog          map[string]CatalogCounts `json:"catalog"`
	BookingsByStatus map[string]int           `json:"bookingsByStatus"`
	TotalBookings    int                      `json:"totalBookings"`
	Revenue          float64                  `json:"revenue"`
	RecentBookings   []RecentBooking          `json:"recentBookings"`
}

// FromDomainStats конвертирует domain модель в DTO
func FromDomainStats(s *domain.DashboardStats) *StatsResponse {
	resp := &StatsResponse{
		Catalog:          make(map[string]CatalogCounts, len(s.Catalog)),
		BookingsByStatus: make(map[string]int, len(s.BookingsByStatus)),
		TotalBookings:    s.TotalBookings,
		Revenue:          s.Revenue,
		RecentBookings:   make([]RecentBooking, 0, len(s.RecentBookings)),
	}

	for kind, c := range s.Catalog {
		resp.Catalog[string(kind)] = CatalogCounts{Total: c.Total, Published: c.Published}
	}
	for status, n := range s.BookingsByStatus {
		resp.BookingsByStatus[string(status)] = n
	}
	for _, b := range s.RecentBookings {
		resp.RecentBookings = append(resp.RecentBookings, RecentBooking{
			ID:           b.ID,
			TrackingCode: b.TrackingCode,
			CustomerName: b.CustomerName,
			ItemTitle:    b.ItemTitle,
			TravelDate:   b.TravelDate.Format(domain.DateFormat),
			Status:       string(b.Status),
			Presentation: domain.PresentStatus(b.Status),
			TotalPrice:   b.TotalPrice,
			CreatedAt:    b.CreatedAt,
		})
	}

	return resp
}
