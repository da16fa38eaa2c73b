package submit_booking

import "errors"

var (
	// ErrSpaceNotFound возвращается, когда площадка не найдена
	ErrSpaceNotFound = errors.New("submit_booking: parking space not found")

	// ErrOutOfRangeDate возвращается, когда дата запроса выходит за
	// границы окна доступности площадки (date_from / date_to)
	ErrOutOfRangeDate = errors.New("submit_booking: date is outside the availability window")

	// ErrOutOfRangeTime возвращается, когда время запроса выходит за
	// границы окна доступности площадки (time_from / time_to)
	ErrOutOfRangeTime = errors.New("submit_booking: time is outside the availability window")

	// ErrInvalidOrder возвращается, когда конец бронирования не строго
	// позже его начала
	ErrInvalidOrder = errors.New("submit_booking: end time must be after start time")

	// ErrNonPositiveDuration возвращается при нулевой или отрицательной
	// длительности бронирования
	ErrNonPositiveDuration = errors.New("submit_booking: duration must be positive")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("submit_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("submit_booking: internal error")
)
