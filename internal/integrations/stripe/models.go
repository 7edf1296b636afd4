package stripe

import "github.com/shopspring/decimal"

// Статусы PaymentIntent
const (
	StatusRequiresPaymentMethod = "requires_payment_method"
	StatusRequiresConfirmation  = "requires_confirmation"
	StatusRequiresAction        = "requires_action"
	StatusProcessing            = "processing"
	StatusSucceeded             = "succeeded"
	StatusCanceled              = "canceled"
)

// CreatePaymentIntentInput параметры создания платежного намерения
type CreatePaymentIntentInput struct {
	Amount         decimal.Decimal   // Сумма в основных единицах валюты
	Currency       string            // ISO 4217, например "jpy"
	Description    string            // Опционально
	ReceiptEmail   string            // Опционально
	Metadata       map[string]string // Опционально
	IdempotencyKey string            // Опционально
}

// PaymentIntent платежное намерение Stripe
type PaymentIntent struct {
	ID           string            `json:"id"`
	Object       string            `json:"object"`
	Amount       int64             `json:"amount"` // В минимальных единицах валюты
	Currency     string            `json:"currency"`
	Status       string            `json:"status"`
	ClientSecret string            `json:"client_secret"`
	Metadata     map[string]string `json:"metadata"`
}

// Succeeded сообщает, что оплата прошла
func (p *PaymentIntent) Succeeded() bool {
	return p.Status == StatusSucceeded
}

// ErrorResponse модель ошибки Stripe API
type ErrorResponse struct {
	Error struct {
		Type    string `json:"type"`
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}
