package slot

import "errors"

var (
	// ErrSlotNotFound возвращается, когда временной слот не найден
	ErrSlotNotFound = errors.New("slot.repository: slot not found")

	// ErrSlotInUse возвращается при удалении слота, на который есть бронирования
	ErrSlotInUse = errors.New("slot.repository: slot has reservations")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("slot.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("slot.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("slot.repository: failed to scan row")
)
