package create_payment_intent

import "errors"

var (
	// ErrNothingToPay возвращается, когда итоговая сумма равна нулю
	ErrNothingToPay = errors.New("create_payment_intent: final amount is zero")

	// ErrPaymentProvider возвращается при ошибке платежной системы
	ErrPaymentProvider = errors.New("create_payment_intent: payment provider error")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_payment_intent: internal error")
)
