package bookings

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/tours-service/internal/domain"
	bookingRepo "github.com/m04kA/tours-service/internal/infra/storage/booking"
	"github.com/m04kA/tours-service/internal/service/bookings/models"
	"github.com/m04kA/tours-service/internal/voucher"
)

// Service сервис для работы с бронированиями
type Service struct {
	bookingRepo       BookingRepository
	renderer          VoucherRenderer
	txManager         TransactionManager
	strictTransitions bool
	logger            Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepo BookingRepository,
	renderer VoucherRenderer,
	txManager TransactionManager,
	strictTransitions bool,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo:       bookingRepo,
		renderer:          renderer,
		txManager:         txManager,
		strictTransitions: strictTransitions,
		logger:            logger,
	}
}

// Track ищет бронирование по трекинг-коду без учёта регистра.
// Отсутствие бронирования не ошибка: возвращается Found=false с исходным кодом.
func (s *Service) Track(ctx context.Context, code string) (*models.TrackResult, error) {
	normalized := domain.NormalizeTrackingCode(code)
	if normalized == "" {
		return nil, fmt.Errorf("%w: tracking code is required", ErrInvalidInput)
	}

	s.logger.Info("Track: looking up code=%s", normalized)

	if len(normalized) > domain.MaxTrackingCodeLength {
		s.logger.Warn("Track: code=%s is too long, treating as not found", normalized)
		return models.ToTrackResult(normalized, nil), nil
	}

	booking, err := s.bookingRepo.GetByTrackingCode(ctx, normalized)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Info("Track: code=%s not found", normalized)
			return models.ToTrackResult(normalized, nil), nil
		}
		s.logger.Error("Track: repository error for code=%s: %v", normalized, err)
		return nil, fmt.Errorf("%w: Track - repository error: %v", ErrInternal, err)
	}

	return models.ToTrackResult(normalized, booking), nil
}

// Voucher формирует PDF для бронирования с кодом code.
// Доступен только для статусов confirmed и completed.
func (s *Service) Voucher(ctx context.Context, code string) (*models.Voucher, error) {
	normalized := domain.NormalizeTrackingCode(code)
	if normalized == "" || len(normalized) > domain.MaxTrackingCodeLength {
		return nil, ErrBookingNotFound
	}

	booking, err := s.bookingRepo.GetByTrackingCode(ctx, normalized)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return nil, ErrBookingNotFound
		}
		s.logger.Error("Voucher: repository error for code=%s: %v", normalized, err)
		return nil, fmt.Errorf("%w: Voucher - repository error: %v", ErrInternal, err)
	}

	if !booking.VoucherAvailable() {
		s.logger.Warn("Voucher: booking code=%s has status=%s, voucher not available", normalized, booking.Status)
		return nil, ErrVoucherNotAvailable
	}

	var buf bytes.Buffer
	if err := s.renderer.Render(&buf, booking); err != nil {
		if errors.Is(err, voucher.ErrNotAvailable) {
			return nil, ErrVoucherNotAvailable
		}
		s.logger.Error("Voucher: render failed for code=%s: %v", normalized, err)
		return nil, fmt.Errorf("%w: Voucher - render: %v", ErrInternal, err)
	}

	s.logger.Info("Voucher: generated for code=%s", normalized)
	return &models.Voucher{
		FileName: voucher.FileName(booking),
		Content:  buf.Bytes(),
	}, nil
}

// GetByID получает бронирование по ID (админка)
func (s *Service) GetByID(ctx context.Context, id int64) (*models.BookingResponse, error) {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainBooking(booking), nil
}

// List возвращает бронирования для админки, новые сверху
func (s *Service) List(ctx context.Context, req *models.ListBookingsRequest) (*models.BookingListResponse, error) {
	filter := domain.BookingsFilter{
		Search: req.Search,
		Limit:  req.Limit,
		Offset: req.Offset,
	}

	if req.Status != nil && *req.Status != "" {
		status, ok := models.ToDomainBookingStatus(*req.Status)
		if !ok {
			s.logger.Warn("List: invalid status filter=%s", *req.Status)
			return nil, fmt.Errorf("%w: %s", ErrInvalidStatus, *req.Status)
		}
		filter.Status = &status
	}

	if len(filter.Search) > domain.MaxSearchLength {
		return nil, fmt.Errorf("%w: search must be at most %d characters", ErrInvalidInput, domain.MaxSearchLength)
	}
	if filter.Offset < 0 {
		return nil, fmt.Errorf("%w: offset must not be negative", ErrInvalidInput)
	}
	if filter.Limit <= 0 {
		filter.Limit = domain.DefaultBookingsLimit
	}
	if filter.Limit > domain.MaxBookingsLimit {
		filter.Limit = domain.MaxBookingsLimit
	}

	bookings, err := s.bookingRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d bookings", len(bookings))
	return models.FromDomainBookingList(bookings), nil
}

// UpdateStatus меняет статус бронирования.
// По умолчанию допускается любой переход между известными статусами;
// при strictTransitions переход проверяется по domain.CanTransition.
func (s *Service) UpdateStatus(ctx context.Context, id int64, req *models.UpdateStatusRequest) (*models.BookingResponse, error) {
	s.logger.Info("UpdateStatus: booking id=%d -> %s", id, req.Status)

	newStatus, ok := models.ToDomainBookingStatus(req.Status)
	if !ok {
		s.logger.Warn("UpdateStatus: invalid status=%s for booking id=%d", req.Status, id)
		return nil, fmt.Errorf("%w: %s", ErrInvalidStatus, req.Status)
	}

	var result *domain.Booking

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		booking, err := s.bookingRepo.GetByID(txCtx, id)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				return ErrBookingNotFound
			}
			return fmt.Errorf("%w: UpdateStatus - get booking: %v", ErrInternal, err)
		}

		if s.strictTransitions && !domain.CanTransition(booking.Status, newStatus) {
			return fmt.Errorf("%w: %s -> %s", ErrTransitionNotAllowed, booking.Status, newStatus)
		}

		if booking.Status == newStatus {
			result = booking
			return nil
		}

		if err := s.bookingRepo.UpdateStatus(txCtx, id, newStatus); err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				return ErrBookingNotFound
			}
			return fmt.Errorf("%w: UpdateStatus - update: %v", ErrInternal, err)
		}

		result, err = s.bookingRepo.GetByID(txCtx, id)
		if err != nil {
			return fmt.Errorf("%w: UpdateStatus - reload booking: %v", ErrInternal, err)
		}
		return nil
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrBookingNotFound):
			s.logger.Warn("UpdateStatus: booking id=%d not found", id)
		case errors.Is(err, ErrTransitionNotAllowed):
			s.logger.Warn("UpdateStatus: booking id=%d: %v", id, err)
		default:
			s.logger.Error("UpdateStatus: booking id=%d: %v", id, err)
			if !errors.Is(err, ErrInternal) {
				err = fmt.Errorf("%w: UpdateStatus - transaction: %v", ErrInternal, err)
			}
		}
		return nil, err
	}

	s.logger.Info("UpdateStatus: booking id=%d now %s", id, result.Status)
	return models.FromDomainBooking(result), nil
}
