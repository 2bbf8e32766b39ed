package domain

// Business validation constants
const (
	MaxGuests              = 50
	MaxSpecialRequestsLen  = 1000
	MaxNameLength          = 200
	MaxTitleLength         = 255
	MaxSearchLength        = 100
	DefaultBookingsLimit   = 100
	MaxBookingsLimit       = 500
	RecentBookingsLimit    = 5
	MaxTrackingCodeLength  = 32
	MaxTrackingCodeRetries = 5
)

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// RevenueStatuses статусы, которые учитываются в выручке
var RevenueStatuses = []BookingStatus{
	StatusConfirmed,
	StatusCompleted,
}
