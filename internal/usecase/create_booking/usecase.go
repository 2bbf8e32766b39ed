package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/tours-service/internal/domain"
	bookingRepo "github.com/m04kA/tours-service/internal/infra/storage/booking"
	catalogRepo "github.com/m04kA/tours-service/internal/infra/storage/catalog"
	"github.com/m04kA/tours-service/internal/integrations/functions"
	"github.com/m04kA/tours-service/pkg/ptr"
)

// UseCase use case для создания бронирования
type UseCase struct {
	bookingRepo    BookingRepository
	catalogRepo    CatalogRepository
	codes          CodeGenerator
	notifier       Notifier
	notifyOnCreate bool
	timeProvider   TimeProvider
	logger         Logger
}

// NewUseCase создает новый экземпляр use case.
// notifier может быть nil, тогда письма не отправляются.
func NewUseCase(
	bookingRepo BookingRepository,
	catalogRepo CatalogRepository,
	codes CodeGenerator,
	notifier Notifier,
	notifyOnCreate bool,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:    bookingRepo,
		catalogRepo:    catalogRepo,
		codes:          codes,
		notifier:       notifier,
		notifyOnCreate: notifyOnCreate,
		timeProvider:   &RealTimeProvider{},
		logger:         logger,
	}
}

// Execute выполняет use case создания бронирования.
// Бронирование создаётся в статусе pending с новым трекинг-кодом;
// при коллизии кода вставка повторяется с другим кодом.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: kind=%s, item=%d, date=%s, guests=%d",
		req.ItemKind, req.ItemID, req.TravelDate.Format(domain.DateFormat), req.NumberOfGuests)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Дата поездки не в прошлом
	if isDateInPast(req.TravelDate, uc.timeProvider.Now()) {
		uc.logger.Warn("CreateBooking: travel date %s is in the past", req.TravelDate.Format(domain.DateFormat))
		return nil, ErrInvalidDate
	}

	// 3. Позиция каталога должна существовать и быть опубликована
	kind := domain.CatalogKind(req.ItemKind)
	item, err := uc.catalogRepo.GetByID(ctx, kind, req.ItemID)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrItemNotFound) {
			uc.logger.Warn("CreateBooking: %s id=%d not found", kind, req.ItemID)
			return nil, ErrItemNotFound
		}
		uc.logger.Error("CreateBooking: failed to get %s id=%d: %v", kind, req.ItemID, err)
		return nil, fmt.Errorf("%w: failed to get catalog item: %v", ErrInternal, err)
	}
	if !item.VisibleTo(domain.Visitor) {
		uc.logger.Warn("CreateBooking: %s id=%d is not published", kind, req.ItemID)
		return nil, ErrItemNotFound
	}

	// 4. Собираем бронирование с денормализованным названием и итоговой ценой
	booking := &domain.Booking{
		ItemKind:        kind,
		ItemID:          ptr.Ptr(item.ID),
		ItemTitle:       item.Title,
		CustomerName:    req.CustomerName,
		CustomerEmail:   req.CustomerEmail,
		CustomerPhone:   req.CustomerPhone,
		TravelDate:      req.TravelDate,
		NumberOfGuests:  req.NumberOfGuests,
		SpecialRequests: req.SpecialRequests,
		Status:          domain.StatusPending,
		TotalPrice:      item.Price * float64(req.NumberOfGuests),
	}

	// 5. Вставка с подбором уникального кода
	created, err := uc.insertWithUniqueCode(ctx, booking)
	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: created booking id=%d, code=%s", created.ID, created.TrackingCode)

	// 6. Письмо не влияет на результат: бронирование уже сохранено
	emailSent := uc.notify(ctx, created)

	return &Response{
		ID:             created.ID,
		TrackingCode:   created.TrackingCode,
		ItemKind:       string(created.ItemKind),
		ItemID:         item.ID,
		ItemTitle:      created.ItemTitle,
		CustomerName:   created.CustomerName,
		CustomerEmail:  created.CustomerEmail,
		TravelDate:     created.TravelDate,
		NumberOfGuests: created.NumberOfGuests,
		Status:         string(created.Status),
		TotalPrice:     created.TotalPrice,
		EmailSent:      emailSent,
		CreatedAt:      created.CreatedAt,
	}, nil
}

func (uc *UseCase) insertWithUniqueCode(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	for attempt := 1; attempt <= domain.MaxTrackingCodeRetries; attempt++ {
		code, err := uc.codes.Generate()
		if err != nil {
			uc.logger.Error("CreateBooking: failed to generate tracking code: %v", err)
			return nil, fmt.Errorf("%w: generate tracking code: %v", ErrInternal, err)
		}
		booking.TrackingCode = code

		created, err := uc.bookingRepo.Create(ctx, booking)
		if err == nil {
			return created, nil
		}
		if errors.Is(err, bookingRepo.ErrDuplicateTrackingCode) {
			uc.logger.Warn("CreateBooking: tracking code collision on attempt %d", attempt)
			continue
		}

		uc.logger.Error("CreateBooking: failed to create booking: %v", err)
		return nil, fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
	}

	uc.logger.Error("CreateBooking: no unique tracking code after %d attempts", domain.MaxTrackingCodeRetries)
	return nil, ErrTrackingCodeExhausted
}

func (uc *UseCase) notify(ctx context.Context, b *domain.Booking) bool {
	if !uc.notifyOnCreate || uc.notifier == nil {
		return false
	}

	err := uc.notifier.SendBookingEmail(ctx, functions.BookingEmail{
		CustomerName:    b.CustomerName,
		CustomerEmail:   b.CustomerEmail,
		CustomerPhone:   ptr.Value(b.CustomerPhone),
		TourName:        fmt.Sprintf("%s (%s)", b.ItemTitle, b.TrackingCode),
		TravelDate:      b.TravelDate.Format(domain.DateFormat),
		NumberOfGuests:  b.NumberOfGuests,
		SpecialRequests: ptr.Value(b.SpecialRequests),
	})
	if err != nil {
		uc.logger.Warn("CreateBooking: notification for code=%s failed: %v", b.TrackingCode, err)
		return false
	}

	return true
}
