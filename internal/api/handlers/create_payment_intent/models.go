package create_payment_intent

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	createPaymentIntent "github.com/m04kA/SMC-ReservationService/internal/usecase/create_payment_intent"
)

// PaymentIntentRequest HTTP request model
type PaymentIntentRequest struct {
	MenuID         string  `json:"menuId"`
	NumberOfPeople int     `json:"numberOfPeople"`
	CouponCode     *string `json:"couponCode,omitempty"`
}

// PaymentIntentResponse HTTP response model
type PaymentIntentResponse struct {
	ClientSecret    string          `json:"clientSecret"`
	PaymentIntentID string          `json:"paymentIntentId"`
	Amount          decimal.Decimal `json:"amount"`
	Currency        string          `json:"currency"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *PaymentIntentRequest) ToUseCaseRequest(idempotencyKey string) (*createPaymentIntent.Request, error) {
	menuID, err := uuid.Parse(r.MenuID)
	if err != nil {
		return nil, err
	}

	return &createPaymentIntent.Request{
		MenuID:         menuID,
		NumberOfPeople: r.NumberOfPeople,
		CouponCode:     r.CouponCode,
		IdempotencyKey: idempotencyKey,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createPaymentIntent.Response) *PaymentIntentResponse {
	return &PaymentIntentResponse{
		ClientSecret:    resp.ClientSecret,
		PaymentIntentID: resp.PaymentIntentID,
		Amount:          resp.Amount,
		Currency:        resp.Currency,
	}
}
