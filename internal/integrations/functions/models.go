package functions

// BookingEmail payload функции send-booking-email
type BookingEmail struct {
	CustomerName    string `json:"customerName"`
	CustomerEmail   string `json:"customerEmail"`
	CustomerPhone   string `json:"customerPhone"`
	TourName        string `json:"tourName"`
	TravelDate      string `json:"travelDate"`
	NumberOfGuests  int    `json:"numberOfGuests"`
	SpecialRequests string `json:"specialRequests"`
}

// errorResponse тело ответа функции при ошибке
type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}
