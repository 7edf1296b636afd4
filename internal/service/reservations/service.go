package reservations

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	reservationRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/reservation"
	"github.com/m04kA/SMC-ReservationService/internal/service/reservations/models"
)

// maxExportDays максимальная длина периода выгрузки
const maxExportDays = 366

// Service сервис бронирований для админки
type Service struct {
	reservationRepo ReservationRepository
	couponRepo      CouponRepository
	txManager       TransactionManager
	logger          Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	reservationRepo ReservationRepository,
	couponRepo CouponRepository,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		reservationRepo: reservationRepo,
		couponRepo:      couponRepo,
		txManager:       txManager,
		logger:          logger,
	}
}

// List возвращает бронирования с фильтром по дате и имени клиента
func (s *Service) List(ctx context.Context, req *models.ListRequest) ([]*models.ReservationResponse, error) {
	filter := domain.ReservationFilter{Date: req.Date}
	if req.Name != nil && strings.TrimSpace(*req.Name) != "" {
		name := strings.TrimSpace(*req.Name)
		filter.CustomerName = &name
	}

	list, err := s.reservationRepo.ListDetails(ctx, filter)
	if err != nil {
		s.logger.Error("List: failed to list reservations: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainList(list), nil
}

// Get возвращает бронирование с данными клиента, слота, меню и купона
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*models.ReservationResponse, error) {
	details, err := s.reservationRepo.GetDetails(ctx, id)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			return nil, ErrReservationNotFound
		}
		s.logger.Error("Get: reservation id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: Get - repository error: %v", ErrInternal, err)
	}

	return models.FromDomain(details), nil
}

// Cancel отменяет бронирование: удаляет его вместе с использованием купона
func (s *Service) Cancel(ctx context.Context, id uuid.UUID) error {
	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		if err := s.couponRepo.DeleteUsagesByReservation(txCtx, id); err != nil {
			return fmt.Errorf("%w: failed to delete coupon usage: %v", ErrInternal, err)
		}
		if err := s.reservationRepo.Delete(txCtx, id); err != nil {
			if errors.Is(err, reservationRepo.ErrReservationNotFound) {
				return ErrReservationNotFound
			}
			return fmt.Errorf("%w: failed to delete reservation: %v", ErrInternal, err)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrReservationNotFound) {
			s.logger.Warn("Cancel: reservation id=%s not found", id)
			return ErrReservationNotFound
		}
		s.logger.Error("Cancel: reservation id=%s: %v", id, err)
		if errors.Is(err, ErrInternal) {
			return err
		}
		return fmt.Errorf("%w: %v", ErrInternal, err)
	}

	s.logger.Info("Cancel: reservation id=%s cancelled", id)
	return nil
}

// Export выгружает бронирования за период в xlsx
func (s *Service) Export(ctx context.Context, req *models.ExportRequest) (*models.ExportFile, error) {
	from, to := domain.DateOnly(req.From), domain.DateOnly(req.To)
	if from.IsZero() || to.IsZero() || to.Before(from) {
		return nil, fmt.Errorf("%w: invalid period", ErrInvalidInput)
	}
	if to.Sub(from).Hours()/24 > maxExportDays {
		return nil, fmt.Errorf("%w: period must not exceed %d days", ErrInvalidInput, maxExportDays)
	}

	list, err := s.reservationRepo.ListDetails(ctx, domain.ReservationFilter{From: &from, To: &to})
	if err != nil {
		s.logger.Error("Export: failed to list reservations: %v", err)
		return nil, fmt.Errorf("%w: Export - repository error: %v", ErrInternal, err)
	}

	content, err := buildWorkbook(from, to, list)
	if err != nil {
		s.logger.Error("Export: failed to build workbook: %v", err)
		return nil, fmt.Errorf("%w: Export - build workbook: %v", ErrInternal, err)
	}

	s.logger.Info("Export: %d reservations from %s to %s", len(list), from.Format(domain.DateFormat), to.Format(domain.DateFormat))

	return &models.ExportFile{
		FileName:    fmt.Sprintf("reservations_%s_to_%s.xlsx", from.Format(domain.DateFormat), to.Format(domain.DateFormat)),
		ContentType: xlsxContentType,
		Content:     content,
	}, nil
}
