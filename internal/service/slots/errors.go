package slots

import "errors"

var (
	// ErrSlotNotFound возвращается, когда слот не найден
	ErrSlotNotFound = errors.New("slots service: slot not found")

	// ErrSlotInUse возвращается при удалении слота с бронированиями
	ErrSlotInUse = errors.New("slots service: slot has reservations")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("slots service: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("slots service: internal error")
)
