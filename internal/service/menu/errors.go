package menu

import "errors"

var (
	// ErrMenuItemNotFound возвращается, когда пункт меню не найден
	ErrMenuItemNotFound = errors.New("menu service: menu item not found")

	// ErrMenuItemInUse возвращается при удалении пункта меню с бронированиями
	ErrMenuItemInUse = errors.New("menu service: menu item has reservations")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("menu service: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("menu service: internal error")
)
