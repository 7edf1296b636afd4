package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	"github.com/m04kA/SMC-ReservationService/internal/service/dashboard/models"
)

// Service сервис статистики админки
type Service struct {
	reservationRepo ReservationRepository
	slotRepo        SlotRepository
	soldOutRepo     SoldOutRepository
	location        *time.Location
	timeProvider    TimeProvider
	logger          Logger
}

// NewService создает новый экземпляр сервиса статистики
// "Сегодня" считается в часовом поясе заведения
func NewService(
	reservationRepo ReservationRepository,
	slotRepo SlotRepository,
	soldOutRepo SoldOutRepository,
	location *time.Location,
	logger Logger,
) *Service {
	if location == nil {
		location = time.UTC
	}
	return &Service{
		reservationRepo: reservationRepo,
		slotRepo:        slotRepo,
		soldOutRepo:     soldOutRepo,
		location:        location,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Stats возвращает сводку по бронированиям и слотам
func (s *Service) Stats(ctx context.Context) (*models.StatsResponse, error) {
	today := domain.DateOnly(s.timeProvider.Now().In(s.location))

	total, err := s.reservationRepo.Count(ctx, nil)
	if err != nil {
		s.logger.Error("Stats: failed to count reservations: %v", err)
		return nil, fmt.Errorf("%w: Stats - count reservations: %v", ErrInternal, err)
	}

	todayCount, err := s.reservationRepo.Count(ctx, &today)
	if err != nil {
		s.logger.Error("Stats: failed to count today's reservations: %v", err)
		return nil, fmt.Errorf("%w: Stats - count today's reservations: %v", ErrInternal, err)
	}

	slots, err := s.slotRepo.Count(ctx)
	if err != nil {
		s.logger.Error("Stats: failed to count slots: %v", err)
		return nil, fmt.Errorf("%w: Stats - count slots: %v", ErrInternal, err)
	}

	soldOut, err := s.soldOutRepo.CountByDate(ctx, today)
	if err != nil {
		s.logger.Error("Stats: failed to count sold-out slots: %v", err)
		return nil, fmt.Errorf("%w: Stats - count sold-out slots: %v", ErrInternal, err)
	}

	return models.FromDomain(&domain.DashboardStats{
		TotalReservations: total,
		TodayReservations: todayCount,
		TotalTimeSlots:    slots,
		SoldOutSlots:      soldOut,
	}), nil
}
