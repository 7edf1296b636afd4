package quote_reservation

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	couponRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/coupon"
	menuRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/menu"
)

// UseCase use case расчета стоимости бронирования
// Используется также при создании платежа и бронирования, чтобы сумма считалась только на сервере
type UseCase struct {
	menuRepo   MenuRepository
	couponRepo CouponRepository
	currency   string
	logger     Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(menuRepo MenuRepository, couponRepo CouponRepository, currency string, logger Logger) *UseCase {
	if currency == "" {
		currency = domain.DefaultCurrency
	}
	return &UseCase{
		menuRepo:   menuRepo,
		couponRepo: couponRepo,
		currency:   currency,
		logger:     logger,
	}
}

// Execute рассчитывает стоимость бронирования
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	quote, err := uc.Quote(ctx, req)
	if err != nil {
		return nil, err
	}
	return &Response{Quote: quote}, nil
}

// Quote рассчитывает стоимость и возвращает доменную модель
func (uc *UseCase) Quote(ctx context.Context, req *Request) (*domain.Quote, error) {
	uc.logger.Info("QuoteReservation: menu=%s, people=%d", req.MenuID, req.NumberOfPeople)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("QuoteReservation: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем пункт меню
	menu, err := uc.menuRepo.GetByID(ctx, req.MenuID)
	if err != nil {
		if errors.Is(err, menuRepo.ErrMenuItemNotFound) {
			uc.logger.Warn("QuoteReservation: menu item id=%s not found", req.MenuID)
			return nil, ErrMenuNotFound
		}
		uc.logger.Error("QuoteReservation: failed to get menu item id=%s: %v", req.MenuID, err)
		return nil, fmt.Errorf("%w: failed to get menu item: %w", ErrInternal, err)
	}

	// 3. Получаем купон, если указан
	var coupon *domain.Coupon
	if req.CouponCode != nil && domain.NormalizeCouponCode(*req.CouponCode) != "" {
		code := domain.NormalizeCouponCode(*req.CouponCode)

		coupon, err = uc.couponRepo.GetByCode(ctx, code)
		if err != nil {
			if errors.Is(err, couponRepo.ErrCouponNotFound) {
				uc.logger.Warn("QuoteReservation: coupon code=%s not found", code)
				return nil, ErrCouponNotFound
			}
			uc.logger.Error("QuoteReservation: failed to get coupon code=%s: %v", code, err)
			return nil, fmt.Errorf("%w: failed to get coupon: %w", ErrInternal, err)
		}

		if !coupon.IsActive {
			uc.logger.Warn("QuoteReservation: coupon code=%s is inactive", code)
			return nil, ErrCouponInactive
		}
	}

	// 4. Считаем стоимость
	quote := domain.NewQuote(menu, req.NumberOfPeople, coupon, uc.currency)

	uc.logger.Info("QuoteReservation: base=%s, discount=%s, final=%s %s",
		quote.BaseAmount, quote.DiscountAmount, quote.FinalAmount, quote.Currency)

	return quote, nil
}
