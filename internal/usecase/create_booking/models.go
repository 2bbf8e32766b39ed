package create_booking

import "time"

// Request модель запроса на создание бронирования
type Request struct {
	ItemKind        string    // tour, activity или transfer
	ItemID          int64     // ID позиции каталога
	CustomerName    string    // Имя клиента
	CustomerEmail   string    // Email клиента
	CustomerPhone   *string   // Телефон (опционально)
	TravelDate      time.Time // Дата поездки (без времени)
	NumberOfGuests  int       // Количество гостей
	SpecialRequests *string   // Пожелания (опционально)
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID             int64
	TrackingCode   string
	ItemKind       string
	ItemID         int64
	ItemTitle      string
	CustomerName   string
	CustomerEmail  string
	TravelDate     time.Time
	NumberOfGuests int
	Status         string
	TotalPrice     float64

	// Удалось ли отправить письмо-уведомление
	EmailSent bool

	CreatedAt time.Time
}
