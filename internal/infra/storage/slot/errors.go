package slot

import "errors"

var (
	// ErrSlotAlreadyExists возвращается при попытке создать второй слот
	// для одного и того же бронирования
	ErrSlotAlreadyExists = errors.New("slot.repository: slot already exists for booking")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("slot.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("slot.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("slot.repository: failed to scan row")
)
