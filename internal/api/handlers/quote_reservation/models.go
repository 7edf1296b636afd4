package quote_reservation

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	quoteReservation "github.com/m04kA/SMC-ReservationService/internal/usecase/quote_reservation"
)

// QuoteRequest HTTP request model
type QuoteRequest struct {
	MenuID         string  `json:"menuId"`
	NumberOfPeople int     `json:"numberOfPeople"`
	CouponCode     *string `json:"couponCode,omitempty"`
}

// QuoteResponse HTTP response model
type QuoteResponse struct {
	MenuID          string          `json:"menuId"`
	MenuName        string          `json:"menuName"`
	UnitPrice       decimal.Decimal `json:"unitPrice"`
	NumberOfPeople  int             `json:"numberOfPeople"`
	BaseAmount      decimal.Decimal `json:"baseAmount"`
	DiscountAmount  decimal.Decimal `json:"discountAmount"`
	DiscountPercent int64           `json:"discountPercent"`
	FinalAmount     decimal.Decimal `json:"finalAmount"`
	Currency        string          `json:"currency"`
	CouponID        *string         `json:"couponId,omitempty"`
	CouponCode      *string         `json:"couponCode,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *QuoteRequest) ToUseCaseRequest() (*quoteReservation.Request, error) {
	menuID, err := uuid.Parse(r.MenuID)
	if err != nil {
		return nil, err
	}

	return &quoteReservation.Request{
		MenuID:         menuID,
		NumberOfPeople: r.NumberOfPeople,
		CouponCode:     r.CouponCode,
	}, nil
}

// FromDomain конвертирует расчет стоимости в HTTP response
func FromDomain(q *domain.Quote) *QuoteResponse {
	resp := &QuoteResponse{
		MenuID:          q.MenuID,
		MenuName:        q.MenuName,
		UnitPrice:       q.UnitPrice,
		NumberOfPeople:  q.NumberOfPeople,
		BaseAmount:      q.BaseAmount,
		DiscountAmount:  q.DiscountAmount,
		DiscountPercent: q.DiscountPercent(),
		FinalAmount:     q.FinalAmount,
		Currency:        q.Currency,
	}

	if q.Coupon != nil {
		id := q.Coupon.ID.String()
		code := q.Coupon.Code
		resp.CouponID = &id
		resp.CouponCode = &code
	}

	return resp
}
