package coupons

import "errors"

var (
	// ErrCouponNotFound возвращается, когда купон не найден
	ErrCouponNotFound = errors.New("coupons service: coupon not found")

	// ErrDuplicateCode возвращается, когда купон с таким кодом уже существует
	ErrDuplicateCode = errors.New("coupons service: coupon code already exists")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("coupons service: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("coupons service: internal error")
)
