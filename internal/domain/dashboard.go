package domain

// DashboardStats агрегаты для главной страницы админки
type DashboardStats struct {
	Catalog          map[CatalogKind]CatalogCounts
	BookingsByStatus map[BookingStatus]int
	TotalBookings    int
	// Выручка по подтверждённым и завершённым бронированиям
	Revenue        float64
	RecentBookings []*Booking
}
