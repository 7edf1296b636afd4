package create_reservation

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	createReservation "github.com/m04kA/SMC-ReservationService/internal/usecase/create_reservation"
)

// CreateReservationRequest HTTP request model
type CreateReservationRequest struct {
	Name            string  `json:"name"`
	Email           string  `json:"email"`
	PhoneNumber     string  `json:"phoneNumber"`
	NumberOfPeople  int     `json:"numberOfPeople"`
	MenuID          string  `json:"menuId"`
	SlotID          string  `json:"slotId"`
	ReservationDate string  `json:"reservationDate"` // "2026-04-01"
	CouponCode      *string `json:"couponCode,omitempty"`
	PaymentIntentID *string `json:"paymentIntentId,omitempty"`
}

func (r *CreateReservationRequest) couponCode() string {
	if r.CouponCode == nil {
		return ""
	}
	return *r.CouponCode
}

// ReservationResponse HTTP response model
type ReservationResponse struct {
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	Email           string          `json:"email"`
	PhoneNumber     string          `json:"phoneNumber"`
	ReservationDate string          `json:"reservationDate"`
	StartTime       string          `json:"startTime"`
	EndTime         string          `json:"endTime"`
	SlotID          string          `json:"slotId"`
	MenuID          string          `json:"menuId"`
	MenuName        string          `json:"menuName"`
	NumberOfPeople  int             `json:"numberOfPeople"`
	BaseAmount      decimal.Decimal `json:"baseAmount"`
	DiscountAmount  decimal.Decimal `json:"discountAmount"`
	FinalAmount     decimal.Decimal `json:"finalAmount"`
	Currency        string          `json:"currency"`
	CouponCode      *string         `json:"couponCode,omitempty"`
	PaymentIntentID *string         `json:"paymentIntentId,omitempty"`
	CreatedAt       string          `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateReservationRequest) ToUseCaseRequest() (*createReservation.Request, error) {
	menuID, err := uuid.Parse(r.MenuID)
	if err != nil {
		return nil, fmt.Errorf("menu id: %w", err)
	}

	slotID, err := uuid.Parse(r.SlotID)
	if err != nil {
		return nil, fmt.Errorf("slot id: %w", err)
	}

	date, err := domain.ParseDate(r.ReservationDate)
	if err != nil {
		return nil, fmt.Errorf("reservation date: %w", err)
	}

	return &createReservation.Request{
		Name:            r.Name,
		Email:           r.Email,
		PhoneNumber:     r.PhoneNumber,
		NumberOfPeople:  r.NumberOfPeople,
		MenuID:          menuID,
		SlotID:          slotID,
		ReservationDate: date,
		CouponCode:      r.CouponCode,
		PaymentIntentID: r.PaymentIntentID,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createReservation.Response) *ReservationResponse {
	return &ReservationResponse{
		ID:              resp.ID.String(),
		Name:            resp.Customer.Name,
		Email:           resp.Customer.Email,
		PhoneNumber:     resp.Customer.PhoneNumber,
		ReservationDate: resp.ReservationDate.Format(domain.DateFormat),
		StartTime:       resp.StartTime.String(),
		EndTime:         resp.EndTime.String(),
		SlotID:          resp.SlotID.String(),
		MenuID:          resp.MenuID.String(),
		MenuName:        resp.MenuName,
		NumberOfPeople:  resp.NumberOfPeople,
		BaseAmount:      resp.BaseAmount,
		DiscountAmount:  resp.DiscountAmount,
		FinalAmount:     resp.FinalAmount,
		Currency:        resp.Currency,
		CouponCode:      resp.CouponCode,
		PaymentIntentID: resp.PaymentIntentID,
		CreatedAt:       resp.CreatedAt.Format(time.RFC3339),
	}
}
