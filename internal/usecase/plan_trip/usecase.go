package plan_trip

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"unicode"

	"github.com/m04kA/tours-service/internal/domain"
	"github.com/m04kA/tours-service/internal/integrations/functions"
)

const whatsAppBaseURL = "https://wa.me/"

// UseCase отправка заявки на индивидуальный тур.
// Два независимых способа: ссылка WhatsApp (без записи на бэкенде) или письмо через send-booking-email.
type UseCase struct {
	notifier       Notifier
	whatsAppNumber string
	logger         Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(notifier Notifier, whatsAppNumber string, logger Logger) *UseCase {
	return &UseCase{
		notifier:       notifier,
		whatsAppNumber: digitsOnly(whatsAppNumber),
		logger:         logger,
	}
}

// WhatsAppLink формирует deep link с текстом заявки. Ответа от мессенджера не ждём.
func (uc *UseCase) WhatsAppLink(req *Request) (*WhatsAppResponse, error) {
	if err := validateContact(req); err != nil {
		uc.logger.Warn("PlanTrip: whatsapp validation failed: %v", err)
		return nil, err
	}
	if uc.whatsAppNumber == "" {
		return nil, ErrMessagingNotConfigured
	}

	message := formatMessage(req)
	link := whatsAppBaseURL + uc.whatsAppNumber + "?text=" + strings.ReplaceAll(url.QueryEscape(message), "+", "%20")

	uc.logger.Info("PlanTrip: whatsapp link built for %s", req.Email)
	return &WhatsAppResponse{URL: link, Message: message}, nil
}

// SendEmail отправляет заявку через функцию send-booking-email.
// При пропущенных датах функция не вызывается.
func (uc *UseCase) SendEmail(ctx context.Context, req *Request) (*EmailResponse, error) {
	if err := validateForEmail(req); err != nil {
		uc.logger.Warn("PlanTrip: email validation failed: %v", err)
		return nil, err
	}

	payload := functions.BookingEmail{
		CustomerName:    req.Name,
		CustomerEmail:   req.Email,
		CustomerPhone:   strings.TrimSpace(req.Phone),
		TourName:        tripTourName,
		TravelDate:      req.ArrivalDate.Format(domain.DateFormat),
		NumberOfGuests:  req.Guests(),
		SpecialRequests: formatEmailDetails(req),
	}

	if err := uc.notifier.SendBookingEmail(ctx, payload); err != nil {
		uc.logger.Error("PlanTrip: send-booking-email failed for %s: %v", req.Email, err)
		return nil, fmt.Errorf("%w: %w", ErrSendFailed, err)
	}

	uc.logger.Info("PlanTrip: trip request emailed for %s", req.Email)
	return &EmailResponse{Sent: true}, nil
}

func digitsOnly(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsDigit(r) {
			return r
		}
		return -1
	}, s)
}
