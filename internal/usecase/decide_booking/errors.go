package decide_booking

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("decide_booking: booking not found")

	// ErrAccessDenied возвращается, когда решение принимает не владелец
	// площадки из бронирования
	ErrAccessDenied = errors.New("decide_booking: access denied")

	// ErrInvalidState возвращается, когда бронирование уже не в pending:
	// из confirmed и cancelled переходов нет
	ErrInvalidState = errors.New("decide_booking: booking is not pending")

	// ErrInvalidDecision возвращается при неизвестном решении
	ErrInvalidDecision = errors.New("decide_booking: unknown decision")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("decide_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("decide_booking: internal error")
)
