package soldout

import "errors"

var (
	// ErrSettingNotFound возвращается, когда настройка sold-out не найдена
	ErrSettingNotFound = errors.New("soldout.repository: setting not found")

	// ErrAlreadyExists возвращается, когда слот уже закрыт на эту дату
	ErrAlreadyExists = errors.New("soldout.repository: setting already exists")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("soldout.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("soldout.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("soldout.repository: failed to scan row")
)
