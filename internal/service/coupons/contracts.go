package coupons

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
)

// CouponRepository интерфейс репозитория купонов
type CouponRepository interface {
	Create(ctx context.Context, coupon *domain.Coupon) (*domain.Coupon, error)
	ListWithUsage(ctx context.Context) ([]*domain.Coupon, error)
	ToggleActive(ctx context.Context, id uuid.UUID) (*domain.Coupon, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
