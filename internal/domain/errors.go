package domain

import "errors"

var (
	// ErrInvalidTimeRange время окончания слота не позже времени начала
	ErrInvalidTimeRange = errors.New("domain: end time must be after start time")

	// ErrInvalidCapacity вместимость слота вне допустимого диапазона
	ErrInvalidCapacity = errors.New("domain: invalid slot capacity")

	// ErrInvalidPartySize количество человек вне допустимого диапазона
	ErrInvalidPartySize = errors.New("domain: invalid number of people")

	// ErrInvalidDiscount некорректный тип или размер скидки
	ErrInvalidDiscount = errors.New("domain: invalid discount")

	// ErrInvalidCouponCode некорректный код купона
	ErrInvalidCouponCode = errors.New("domain: invalid coupon code")

	// ErrInvalidMenuItem некорректные данные пункта меню
	ErrInvalidMenuItem = errors.New("domain: invalid menu item")
)
