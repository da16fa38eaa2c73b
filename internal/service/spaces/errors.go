package spaces

import "errors"

var (
	// ErrSpaceNotFound возвращается, когда площадка не найдена
	ErrSpaceNotFound = errors.New("parking space not found")

	// ErrAccessDenied возвращается, когда площадку меняет не её владелец
	ErrAccessDenied = errors.New("access denied")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
