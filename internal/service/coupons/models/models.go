package models

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
)

// CreateCouponRequest запрос на создание купона
type CreateCouponRequest struct {
	Code          string          `json:"code"`
	Name          string          `json:"name"`
	DiscountType  string          `json:"discountType"` // fixed | percent
	DiscountValue decimal.Decimal `json:"discountValue"`
}

// CouponResponse ответ с данными купона
type CouponResponse struct {
	ID            string          `json:"id"`
	Code          string          `json:"code"`
	Name          string          `json:"name"`
	DiscountType  string          `json:"discountType"`
	DiscountValue decimal.Decimal `json:"discountValue"`
	IsActive      bool            `json:"isActive"`
	UsageCount    int             `json:"usageCount"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
}

// FromDomain конвертирует купон в ответ
func FromDomain(c *domain.Coupon) *CouponResponse {
	return &CouponResponse{
		ID:            c.ID.String(),
		Code:          c.Code,
		Name:          c.Name,
		DiscountType:  string(c.DiscountType),
		DiscountValue: c.DiscountValue,
		IsActive:      c.IsActive,
		UsageCount:    c.UsageCount,
		CreatedAt:     c.CreatedAt,
		UpdatedAt:     c.UpdatedAt,
	}
}

// FromDomainList конвертирует список купонов
func FromDomainList(list []*domain.Coupon) []*CouponResponse {
	result := make([]*CouponResponse, 0, len(list))
	for _, c := range list {
		result = append(result, FromDomain(c))
	}
	return result
}
