package coupons

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-ReservationService/internal/service/coupons/models"
)

type CouponService interface {
	List(ctx context.Context) ([]*models.CouponResponse, error)
	Create(ctx context.Context, req *models.CreateCouponRequest) (*models.CouponResponse, error)
	Toggle(ctx context.Context, id uuid.UUID) (*models.CouponResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
