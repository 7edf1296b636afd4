package auth

import "errors"

var (
	// ErrInvalidCredentials возвращается при неверном email или пароле
	ErrInvalidCredentials = errors.New("auth service: invalid credentials")

	// ErrInvalidToken возвращается при невалидном или просроченном токене
	ErrInvalidToken = errors.New("auth service: invalid token")

	// ErrAdminNotFound возвращается, когда администратор не найден
	ErrAdminNotFound = errors.New("auth service: admin not found")

	// ErrEmailTaken возвращается, когда email уже зарегистрирован
	ErrEmailTaken = errors.New("auth service: email already taken")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("auth service: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("auth service: internal error")
)
