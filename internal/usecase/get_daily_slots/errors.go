package get_daily_slots

import "errors"

var (
	// ErrInvalidDate возвращается при некорректной дате
	ErrInvalidDate = errors.New("get_daily_slots: invalid date")

	// ErrDateInPast возвращается, когда запрошена прошедшая дата
	ErrDateInPast = errors.New("get_daily_slots: date is in the past")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_daily_slots: internal error")
)
