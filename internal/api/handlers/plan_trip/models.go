package plan_trip

import (
	"fmt"
	"time"

	"github.com/m04kA/tours-service/internal/domain"
	planTrip "github.com/m04kA/tours-service/internal/usecase/plan_trip"
)

// TripRequest HTTP модель формы планирования поездки
type TripRequest struct {
	Name          string   `json:"name"`
	Email         string   `json:"email"`
	Phone         string   `json:"phone,omitempty"`
	Country       string   `json:"country,omitempty"`
	ArrivalDate   string   `json:"arrivalDate,omitempty"`   // "2026-07-01"
	DepartureDate string   `json:"departureDate,omitempty"` // "2026-07-08"
	Adults        int      `json:"adults"`
	Children      int      `json:"children"`
	Budget        string   `json:"budget,omitempty"`
	Accommodation string   `json:"accommodation,omitempty"`
	Interests     []string `json:"interests,omitempty"`
	Message       string   `json:"message,omitempty"`
}

// WhatsAppResponse ссылка на чат с заполненным сообщением
type WhatsAppResponse struct {
	URL     string `json:"url"`
	Message string `json:"message"`
}

// EmailResponse результат отправки заявки
type EmailResponse struct {
	Sent bool `json:"sent"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *TripRequest) ToUseCaseRequest() (*planTrip.Request, error) {
	arrival, err := parseOptionalDate(r.ArrivalDate)
	if err != nil {
		return nil, fmt.Errorf("arrivalDate: %w", err)
	}
	departure, err := parseOptionalDate(r.DepartureDate)
	if err != nil {
		return nil, fmt.Errorf("departureDate: %w", err)
	}

	return &planTrip.Request{
		Name:          r.Name,
		Email:         r.Email,
		Phone:         r.Phone,
		Country:       r.Country,
		ArrivalDate:   arrival,
		DepartureDate: departure,
		Adults:        r.Adults,
		Children:      r.Children,
		Budget:        r.Budget,
		Accommodation: r.Accommodation,
		Interests:     r.Interests,
		Message:       r.Message,
	}, nil
}

func parseOptionalDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse(domain.DateFormat, s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
