package slots

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	slotRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/slot"
	soldOutRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/soldout"
	"github.com/m04kA/SMC-ReservationService/internal/service/slots/models"
)

// Service сервис управления слотами и sold-out
type Service struct {
	slotRepo    SlotRepository
	soldOutRepo SoldOutRepository
	txManager   TransactionManager
	logger      Logger
}

// NewService создает новый экземпляр сервиса слотов
func NewService(slotRepo SlotRepository, soldOutRepo SoldOutRepository, txManager TransactionManager, logger Logger) *Service {
	return &Service{
		slotRepo:    slotRepo,
		soldOutRepo: soldOutRepo,
		txManager:   txManager,
		logger:      logger,
	}
}

// List возвращает все слоты по времени начала
func (s *Service) List(ctx context.Context) ([]*models.SlotResponse, error) {
	slots, err := s.slotRepo.List(ctx)
	if err != nil {
		s.logger.Error("List: failed to list slots: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainList(slots), nil
}

// Create создает слот
func (s *Service) Create(ctx context.Context, req *models.SlotRequest) (*models.SlotResponse, error) {
	slot, err := s.toValidSlot(uuid.Nil, req)
	if err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}

	created, err := s.slotRepo.Create(ctx, slot)
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: slot id=%s %s-%s capacity=%d created", created.ID, created.StartTime, created.EndTime, created.Capacity)
	return models.FromDomain(created), nil
}

// Update обновляет время и вместимость слота
// Уже созданные бронирования не пересчитываются
func (s *Service) Update(ctx context.Context, id uuid.UUID, req *models.SlotRequest) (*models.SlotResponse, error) {
	slot, err := s.toValidSlot(id, req)
	if err != nil {
		s.logger.Warn("Update: validation failed for id=%s: %v", id, err)
		return nil, err
	}

	updated, err := s.slotRepo.Update(ctx, slot)
	if err != nil {
		if errors.Is(err, slotRepo.ErrSlotNotFound) {
			s.logger.Warn("Update: slot id=%s not found", id)
			return nil, ErrSlotNotFound
		}
		s.logger.Error("Update: repository error for id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: slot id=%s updated", id)
	return models.FromDomain(updated), nil
}

// Delete удаляет слот без бронирований
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.slotRepo.Delete(ctx, id); err != nil {
		switch {
		case errors.Is(err, slotRepo.ErrSlotNotFound):
			s.logger.Warn("Delete: slot id=%s not found", id)
			return ErrSlotNotFound
		case errors.Is(err, slotRepo.ErrSlotInUse):
			s.logger.Warn("Delete: slot id=%s has reservations", id)
			return ErrSlotInUse
		default:
			s.logger.Error("Delete: repository error for id=%s: %v", id, err)
			return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
		}
	}

	s.logger.Info("Delete: slot id=%s deleted", id)
	return nil
}

// ListSoldOut возвращает настройки sold-out на дату
func (s *Service) ListSoldOut(ctx context.Context, date time.Time) ([]*models.SoldOutResponse, error) {
	settings, err := s.soldOutRepo.ListByDate(ctx, date)
	if err != nil {
		s.logger.Error("ListSoldOut: failed to list settings for %s: %v", date.Format(domain.DateFormat), err)
		return nil, fmt.Errorf("%w: ListSoldOut - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainSoldOutList(settings), nil
}

// ToggleSoldOut закрывает слот на дату или снимает закрытие
func (s *Service) ToggleSoldOut(ctx context.Context, slotID uuid.UUID, date time.Time) (*models.ToggleSoldOutResponse, error) {
	date = domain.DateOnly(date)
	var isSoldOut bool

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		// 1. Проверяем существование слота
		if _, err := s.slotRepo.GetByID(txCtx, slotID); err != nil {
			if errors.Is(err, slotRepo.ErrSlotNotFound) {
				return ErrSlotNotFound
			}
			return fmt.Errorf("%w: failed to get slot: %v", ErrInternal, err)
		}

		// 2. Текущее состояние
		exists, err := s.soldOutRepo.Exists(txCtx, slotID, date)
		if err != nil {
			return fmt.Errorf("%w: failed to check sold-out: %v", ErrInternal, err)
		}

		// 3. Переключаем
		if exists {
			if err := s.soldOutRepo.Delete(txCtx, slotID, date); err != nil && !errors.Is(err, soldOutRepo.ErrSettingNotFound) {
				return fmt.Errorf("%w: failed to delete sold-out: %v", ErrInternal, err)
			}
			isSoldOut = false
			return nil
		}

		if _, err := s.soldOutRepo.Create(txCtx, slotID, date); err != nil && !errors.Is(err, soldOutRepo.ErrAlreadyExists) {
			return fmt.Errorf("%w: failed to create sold-out: %v", ErrInternal, err)
		}
		isSoldOut = true
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrSlotNotFound) {
			s.logger.Warn("ToggleSoldOut: slot id=%s not found", slotID)
			return nil, ErrSlotNotFound
		}
		s.logger.Error("ToggleSoldOut: slot id=%s date=%s: %v", slotID, date.Format(domain.DateFormat), err)
		if errors.Is(err, ErrInternal) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	s.logger.Info("ToggleSoldOut: slot id=%s date=%s sold_out=%t", slotID, date.Format(domain.DateFormat), isSoldOut)

	return &models.ToggleSoldOutResponse{
		SlotID:    slotID.String(),
		Date:      date.Format(domain.DateFormat),
		IsSoldOut: isSoldOut,
	}, nil
}

func (s *Service) toValidSlot(id uuid.UUID, req *models.SlotRequest) (*domain.TimeSlot, error) {
	slot, err := req.ToDomain(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if err := slot.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return slot, nil
}
