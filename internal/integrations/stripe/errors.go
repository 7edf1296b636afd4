package stripe

import "errors"

var (
	// ErrInvalidAmount возвращается, когда сумму нельзя передать в Stripe
	ErrInvalidAmount = errors.New("stripe client: invalid amount")

	// ErrPaymentIntentNotFound возвращается, когда платежное намерение не найдено
	ErrPaymentIntentNotFound = errors.New("stripe client: payment intent not found")

	// ErrCardDeclined возвращается при отклонении платежа (HTTP 402)
	ErrCardDeclined = errors.New("stripe client: payment declined")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("stripe client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от Stripe
	ErrInvalidResponse = errors.New("stripe client: invalid response")
)
