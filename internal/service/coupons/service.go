package coupons

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	couponRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/coupon"
	"github.com/m04kA/SMC-ReservationService/internal/service/coupons/models"
)

// Service сервис управления купонами
type Service struct {
	couponRepo CouponRepository
	logger     Logger
}

// NewService создает новый экземпляр сервиса купонов
func NewService(couponRepo CouponRepository, logger Logger) *Service {
	return &Service{
		couponRepo: couponRepo,
		logger:     logger,
	}
}

// List возвращает купоны от новых к старым с количеством использований
func (s *Service) List(ctx context.Context) ([]*models.CouponResponse, error) {
	list, err := s.couponRepo.ListWithUsage(ctx)
	if err != nil {
		s.logger.Error("List: failed to list coupons: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainList(list), nil
}

// Create создает активный купон, код сохраняется в верхнем регистре
func (s *Service) Create(ctx context.Context, req *models.CreateCouponRequest) (*models.CouponResponse, error) {
	coupon := &domain.Coupon{
		Code:          domain.NormalizeCouponCode(req.Code),
		Name:          strings.TrimSpace(req.Name),
		DiscountType:  domain.DiscountType(strings.ToLower(strings.TrimSpace(req.DiscountType))),
		DiscountValue: req.DiscountValue,
		IsActive:      true,
	}

	// 1. Валидация
	if err := validateCoupon(coupon); err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}

	// 2. Сохраняем
	created, err := s.couponRepo.Create(ctx, coupon)
	if err != nil {
		if errors.Is(err, couponRepo.ErrDuplicateCode) {
			s.logger.Warn("Create: coupon code=%s already exists", coupon.Code)
			return nil, ErrDuplicateCode
		}
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: coupon id=%s code=%s %s %s created",
		created.ID, created.Code, created.DiscountType, created.DiscountValue)
	return models.FromDomain(created), nil
}

// Toggle включает или выключает купон
func (s *Service) Toggle(ctx context.Context, id uuid.UUID) (*models.CouponResponse, error) {
	coupon, err := s.couponRepo.ToggleActive(ctx, id)
	if err != nil {
		if errors.Is(err, couponRepo.ErrCouponNotFound) {
			s.logger.Warn("Toggle: coupon id=%s not found", id)
			return nil, ErrCouponNotFound
		}
		s.logger.Error("Toggle: repository error for id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: Toggle - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Toggle: coupon id=%s active=%t", id, coupon.IsActive)
	return models.FromDomain(coupon), nil
}

func validateCoupon(c *domain.Coupon) error {
	if err := domain.ValidateCouponCode(c.Code); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if c.Name == "" || len([]rune(c.Name)) > domain.MaxNameLength {
		return fmt.Errorf("%w: name is required and must be at most %d characters", ErrInvalidInput, domain.MaxNameLength)
	}
	if err := domain.ValidateDiscount(c.DiscountType, c.DiscountValue); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return nil
}
