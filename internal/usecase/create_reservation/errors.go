package create_reservation

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_reservation: invalid input data")

	// ErrInvalidPartySize возвращается при некорректном количестве человек
	ErrInvalidPartySize = errors.New("create_reservation: invalid number of people")

	// ErrDateInPast возвращается при попытке забронировать прошедшую дату
	ErrDateInPast = errors.New("create_reservation: date is in the past")

	// ErrMenuNotFound возвращается, когда пункт меню не найден
	ErrMenuNotFound = errors.New("create_reservation: menu item not found")

	// ErrSlotNotFound возвращается, когда слот не найден
	ErrSlotNotFound = errors.New("create_reservation: slot not found")

	// ErrCouponNotFound возвращается, когда купон не найден
	ErrCouponNotFound = errors.New("create_reservation: coupon not found")

	// ErrCouponInactive возвращается, когда купон отключен
	ErrCouponInactive = errors.New("create_reservation: coupon is inactive")

	// ErrSlotSoldOut возвращается, когда слот закрыт на дату
	ErrSlotSoldOut = errors.New("create_reservation: slot is sold out")

	// ErrCapacityExceeded возвращается, когда в слоте недостаточно мест
	ErrCapacityExceeded = errors.New("create_reservation: not enough capacity")

	// ErrPaymentRequired возвращается, когда не передан ID платежа
	ErrPaymentRequired = errors.New("create_reservation: payment intent is required")

	// ErrPaymentNotCompleted возвращается, когда платеж не завершен
	ErrPaymentNotCompleted = errors.New("create_reservation: payment is not completed")

	// ErrPaymentMismatch возвращается, когда сумма или валюта платежа не совпадает с расчетом
	ErrPaymentMismatch = errors.New("create_reservation: payment amount mismatch")

	// ErrDuplicatePayment возвращается, когда платеж уже использован другим бронированием
	ErrDuplicatePayment = errors.New("create_reservation: payment intent already used")

	// ErrPaymentProvider возвращается при ошибке платежной системы
	ErrPaymentProvider = errors.New("create_reservation: payment provider error")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_reservation: internal error")
)
