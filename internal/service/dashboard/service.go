package dashboard

import (
	"context"
	"fmt"

	"github.com/m04kA/tours-service/internal/domain"
	"github.com/m04kA/tours-service/internal/service/dashboard/models"
)

// Service агрегаты для дашборда админки.
// Считаются запросами в БД, а не выборкой таблиц целиком.
type Service struct {
	catalogRepo CatalogRepository
	bookingRepo BookingRepository
	txManager   TransactionManager
	logger      Logger
}

// NewService создает новый экземпляр сервиса дашборда
func NewService(catalogRepo CatalogRepository, bookingRepo BookingRepository, txManager TransactionManager, logger Logger) *Service {
	return &Service{
		catalogRepo: catalogRepo,
		bookingRepo: bookingRepo,
		txManager:   txManager,
		logger:      logger,
	}
}

// Stats собирает счётчики каталога, бронирования по статусам, выручку и последние бронирования
// в одной read-only транзакции
func (s *Service) Stats(ctx context.Context) (*models.StatsResponse, error) {
	stats := &domain.DashboardStats{
		Catalog:          make(map[domain.CatalogKind]domain.CatalogCounts, len(domain.CatalogKinds)),
		BookingsByStatus: make(map[domain.BookingStatus]int),
	}

	err := s.txManager.DoReadOnly(ctx, func(txCtx context.Context) error {
		for _, kind := range domain.CatalogKinds {
			counts, err := s.catalogRepo.Counts(txCtx, kind)
			if err != nil {
				return fmt.Errorf("count %s: %w", kind, err)
			}
			stats.Catalog[kind] = counts
		}

		byStatus, err := s.bookingRepo.CountByStatus(txCtx)
		if err != nil {
			return fmt.Errorf("count bookings: %w", err)
		}
		for _, status := range []domain.BookingStatus{
			domain.StatusPending, domain.StatusConfirmed, domain.StatusCancelled, domain.StatusCompleted,
		} {
			stats.BookingsByStatus[status] = 0
		}
		for status, n := range byStatus {
			stats.BookingsByStatus[status] = n
			stats.TotalBookings += n
		}

		stats.Revenue, err = s.bookingRepo.SumRevenue(txCtx, domain.RevenueStatuses)
		if err != nil {
			return fmt.Errorf("sum revenue: %w", err)
		}

		stats.RecentBookings, err = s.bookingRepo.List(txCtx, domain.BookingsFilter{Limit: domain.RecentBookingsLimit})
		if err != nil {
			return fmt.Errorf("recent bookings: %w", err)
		}
		return nil
	})
	if err != nil {
		s.logger.Error("Stats: %v", err)
		return nil, fmt.Errorf("%w: Stats - %v", ErrInternal, err)
	}

	s.logger.Info("Stats: total bookings=%d, revenue=%.2f", stats.TotalBookings, stats.Revenue)
	return models.FromDomainStats(stats), nil
}
