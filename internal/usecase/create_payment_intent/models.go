package create_payment_intent

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	resultCreated = "created"
	resultFailed  = "failed"
)

// Request модель запроса на создание платежного намерения
type Request struct {
	MenuID         uuid.UUID
	NumberOfPeople int
	CouponCode     *string // Код купона (опционально)
	IdempotencyKey string  // Ключ идемпотентности клиента (опционально)
}

// Response модель ответа с данными для клиентской оплаты
type Response struct {
	ClientSecret    string
	PaymentIntentID string
	Amount          decimal.Decimal
	Currency        string
}
