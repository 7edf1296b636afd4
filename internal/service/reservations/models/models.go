package models

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
)

// Request модели

// ListRequest фильтр списка бронирований
type ListRequest struct {
	Date *time.Time // Конкретная дата (опционально)
	Name *string    // Подстрока имени клиента (опционально)
}

// ExportRequest период выгрузки
type ExportRequest struct {
	From time.Time
	To   time.Time
}

// Response модели

// CustomerResponse контактные данные клиента
type CustomerResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
}

// ReservationResponse ответ с данными бронирования
type ReservationResponse struct {
	ID              string           `json:"id"`
	ReservationDate string           `json:"reservationDate"`
	StartTime       string           `json:"startTime"`
	EndTime         string           `json:"endTime"`
	SlotID          string           `json:"slotId"`
	MenuID          string           `json:"menuId"`
	MenuName        string           `json:"menuName"`
	NumberOfPeople  int              `json:"numberOfPeople"`
	BaseAmount      decimal.Decimal  `json:"baseAmount"`
	DiscountAmount  decimal.Decimal  `json:"discountAmount"`
	FinalAmount     decimal.Decimal  `json:"finalAmount"`
	Currency        string           `json:"currency"`
	CouponCode      *string          `json:"couponCode,omitempty"`
	PaymentIntentID *string          `json:"paymentIntentId,omitempty"`
	Customer        CustomerResponse `json:"customer"`
	CreatedAt       time.Time        `json:"createdAt"`
}

// ExportFile сформированный файл выгрузки
type ExportFile struct {
	FileName    string
	ContentType string
	Content     []byte
}

// FromDomain конвертирует бронирование в ответ
func FromDomain(d *domain.ReservationDetails) *ReservationResponse {
	return &ReservationResponse{
		ID:              d.ID.String(),
		ReservationDate: d.ReservationDate.Format(domain.DateFormat),
		StartTime:       d.StartTime.String(),
		EndTime:         d.EndTime.String(),
		SlotID:          d.SlotID.String(),
		MenuID:          d.MenuID.String(),
		MenuName:        d.MenuName,
		NumberOfPeople:  d.NumberOfPeople,
		BaseAmount:      d.BaseAmount,
		DiscountAmount:  d.DiscountAmount,
		FinalAmount:     d.FinalAmount,
		Currency:        d.Currency,
		CouponCode:      d.CouponCode,
		PaymentIntentID: d.PaymentIntentID,
		Customer: CustomerResponse{
			ID:          d.Customer.ID.String(),
			Name:        d.Customer.Name,
			Email:       d.Customer.Email,
			PhoneNumber: d.Customer.PhoneNumber,
		},
		CreatedAt: d.CreatedAt,
	}
}

// FromDomainList конвертирует список бронирований
func FromDomainList(list []*domain.ReservationDetails) []*ReservationResponse {
	result := make([]*ReservationResponse, 0, len(list))
	for _, d := range list {
		result = append(result, FromDomain(d))
	}
	return result
}
