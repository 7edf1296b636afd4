package quote_reservation

import "errors"

var (
	// ErrMenuNotFound возвращается, когда пункт меню не найден
	ErrMenuNotFound = errors.New("quote_reservation: menu item not found")

	// ErrCouponNotFound возвращается, когда купон с таким кодом не найден
	ErrCouponNotFound = errors.New("quote_reservation: coupon not found")

	// ErrCouponInactive возвращается, когда купон отключен
	ErrCouponInactive = errors.New("quote_reservation: coupon is inactive")

	// ErrInvalidPartySize возвращается при некорректном количестве человек
	ErrInvalidPartySize = errors.New("quote_reservation: invalid number of people")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("quote_reservation: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("quote_reservation: internal error")
)
