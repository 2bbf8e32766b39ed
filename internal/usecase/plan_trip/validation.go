package plan_trip

import (
	"fmt"
	"net/mail"
	"strings"

	"github.com/m04kA/tours-service/internal/domain"
)

// validateContact имя и email обязательны для обоих способов отправки
func validateContact(req *Request) error {
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)

	if req.Name == "" || req.Email == "" {
		return fmt.Errorf("%w: please provide your name and email", ErrInvalidInput)
	}
	if len(req.Name) > domain.MaxNameLength {
		return fmt.Errorf("%w: name must be at most %d characters", ErrInvalidInput, domain.MaxNameLength)
	}
	// только голый адрес, без отображаемого имени вида "Jane <jane@x.com>"
	if addr, err := mail.ParseAddress(req.Email); err != nil || addr.Address != req.Email {
		return fmt.Errorf("%w: invalid email", ErrInvalidInput)
	}
	if req.Adults < 0 || req.Children < 0 || req.Guests() > domain.MaxGuests {
		return fmt.Errorf("%w: number of travelers must be between 0 and %d", ErrInvalidInput, domain.MaxGuests)
	}
	if req.ArrivalDate != nil && req.DepartureDate != nil && req.DepartureDate.Before(*req.ArrivalDate) {
		return fmt.Errorf("%w: departure date must not be before arrival date", ErrInvalidInput)
	}

	return nil
}

// validateForEmail для письма дополнительно нужны обе даты
func validateForEmail(req *Request) error {
	if err := validateContact(req); err != nil {
		return err
	}
	if req.ArrivalDate == nil || req.DepartureDate == nil {
		return fmt.Errorf("%w: please select both arrival and departure dates", ErrInvalidInput)
	}
	return nil
}
