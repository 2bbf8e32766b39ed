package plan_trip

import "github.com/m04kA/tours-service/internal/domain"

// Request заявка из формы планирования поездки
type Request = domain.TripRequest

// WhatsAppResponse ссылка для открытия чата с заполненным текстом
type WhatsAppResponse struct {
	URL     string
	Message string
}

// EmailResponse результат отправки заявки по email
type EmailResponse struct {
	Sent bool
}
