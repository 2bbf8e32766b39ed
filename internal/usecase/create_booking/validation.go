package create_booking

import (
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/m04kA/tours-service/internal/domain"
)

// validateRequest валидирует и нормализует входные данные запроса
func validateRequest(req *Request) error {
	kind := domain.CatalogKind(strings.ToLower(strings.TrimSpace(req.ItemKind)))
	if !kind.IsValid() {
		return fmt.Errorf("%w: unknown item kind %q", ErrInvalidInput, req.ItemKind)
	}
	req.ItemKind = string(kind)

	if req.ItemID <= 0 {
		return fmt.Errorf("%w: itemId must be positive", ErrInvalidInput)
	}

	req.CustomerName = strings.TrimSpace(req.CustomerName)
	if req.CustomerName == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if len(req.CustomerName) > domain.MaxNameLength {
		return fmt.Errorf("%w: name must be at most %d characters", ErrInvalidInput, domain.MaxNameLength)
	}

	req.CustomerEmail = strings.TrimSpace(req.CustomerEmail)
	if req.CustomerEmail == "" {
		return fmt.Errorf("%w: email is required", ErrInvalidInput)
	}
	// только голый адрес, без отображаемого имени вида "Jane <jane@x.com>"
	if addr, err := mail.ParseAddress(req.CustomerEmail); err != nil || addr.Address != req.CustomerEmail {
		return fmt.Errorf("%w: invalid email", ErrInvalidInput)
	}

	if req.TravelDate.IsZero() {
		return fmt.Errorf("%w: travel date is required", ErrInvalidInput)
	}

	if req.NumberOfGuests < 1 || req.NumberOfGuests > domain.MaxGuests {
		return fmt.Errorf("%w: number of guests must be between 1 and %d", ErrInvalidInput, domain.MaxGuests)
	}

	if req.SpecialRequests != nil {
		trimmed := strings.TrimSpace(*req.SpecialRequests)
		if len(trimmed) > domain.MaxSpecialRequestsLen {
			return fmt.Errorf("%w: special requests must be at most %d characters", ErrInvalidInput, domain.MaxSpecialRequestsLen)
		}
		if trimmed == "" {
			req.SpecialRequests = nil
		} else {
			req.SpecialRequests = &trimmed
		}
	}

	if req.CustomerPhone != nil {
		trimmed := strings.TrimSpace(*req.CustomerPhone)
		if trimmed == "" {
			req.CustomerPhone = nil
		} else {
			req.CustomerPhone = &trimmed
		}
	}

	return nil
}

// isDateInPast сравнивает только даты, время суток не учитывается
func isDateInPast(date time.Time, now time.Time) bool {
	y1, m1, d1 := date.Date()
	y2, m2, d2 := now.Date()
	day := time.Date(y1, m1, d1, 0, 0, 0, 0, time.UTC)
	today := time.Date(y2, m2, d2, 0, 0, 0, 0, time.UTC)
	return day.Before(today)
}
