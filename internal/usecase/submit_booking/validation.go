package submit_booking

import (
	"fmt"
	"time"

	"github.com/parkshare/PSM-BookingService/internal/domain"
	"github.com/parkshare/PSM-BookingService/pkg/types"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.SpaceID <= 0 {
		return fmt.Errorf("%w: spaceID must be positive", ErrInvalidInput)
	}

	if req.SeekerID <= 0 {
		return fmt.Errorf("%w: seekerID must be positive", ErrInvalidInput)
	}

	if req.Start.IsZero() {
		return fmt.Errorf("%w: start time is required", ErrInvalidInput)
	}

	if req.End.IsZero() {
		return fmt.Errorf("%w: end time is required", ErrInvalidInput)
	}

	return nil
}

// validateWindow проверяет оба конца запрошенного интервала против окна
// доступности площадки и порядок границ
// Поля проверяются в том же порядке, в котором их заполняет форма:
// начало, конец, затем взаимный порядок
func validateWindow(window domain.AvailabilityWindow, start, end time.Time) error {
	if err := validateInstant(window, start, false); err != nil {
		return err
	}

	if err := validateInstant(window, end, true); err != nil {
		return err
	}

	// Конец обязан быть строго позже начала
	if !end.After(start) {
		return fmt.Errorf("%w: end %s is not after start %s",
			ErrInvalidOrder, end.Format(time.RFC3339), start.Format(time.RFC3339))
	}

	return nil
}

// validateInstant проверяет один момент времени против окна доступности
// Дата сравнивается с точностью до дня, время суток - по границам HH:MM
// Верхняя граница времени (time_to) проверяется только для конца
// бронирования: начать можно в любой момент после time_from
func validateInstant(window domain.AvailabilityWindow, t time.Time, isEnd bool) error {
	day := dateOnly(t)

	if day.Before(dateOnly(window.DateFrom)) {
		return fmt.Errorf("%w: date cannot be before %s",
			ErrOutOfRangeDate, window.DateFrom.Format(domain.DateFormat))
	}

	if day.After(dateOnly(window.DateTo)) {
		return fmt.Errorf("%w: date cannot be after %s",
			ErrOutOfRangeDate, window.DateTo.Format(domain.DateFormat))
	}

	timeOfDay := types.NewTimeString(t)

	if timeOfDay.IsBefore(window.TimeFrom) {
		return fmt.Errorf("%w: time must be at or after %s",
			ErrOutOfRangeTime, window.TimeFrom)
	}

	if isEnd && timeOfDay.IsAfter(window.TimeTo) {
		return fmt.Errorf("%w: end time must be at or before %s",
			ErrOutOfRangeTime, window.TimeTo)
	}

	return nil
}

// dateOnly обнуляет время, оставляя календарную дату
// Хранимые границы окна могут нести время - оно игнорируется
func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
