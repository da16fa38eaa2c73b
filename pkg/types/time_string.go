package types

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// timeFormat формат времени HH:MM (24 часа)
const timeFormat = "15:04"

var (
	// ErrInvalidTimeFormat возвращается при некорректном формате строки времени
	ErrInvalidTimeFormat = errors.New("types: invalid time string format, expected HH:MM")
)

// TimeString время суток в формате "HH:MM" без даты и таймзоны
// Используется для хранения границ временных окон (time_from / time_to)
type TimeString string

// NewTimeString создает TimeString из time.Time (отбрасывает дату и секунды)
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format(timeFormat))
}

// NewTimeStringFromString создает TimeString из строки с валидацией формата
func NewTimeStringFromString(s string) (TimeString, error) {
	ts := TimeString(s)
	if err := ts.Validate(); err != nil {
		return "", err
	}
	return ts, nil
}

// Validate проверяет, что строка соответствует формату HH:MM
func (t TimeString) Validate() error {
	if _, err := time.Parse(timeFormat, string(t)); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidTimeFormat, string(t))
	}
	return nil
}

// IsZero возвращает true, если время не задано
func (t TimeString) IsZero() bool {
	return t == ""
}

// String возвращает строковое представление времени
func (t TimeString) String() string {
	return string(t)
}

// IsBefore возвращает true, если t строго раньше other
// Формат HH:MM сравнивается лексикографически корректно
func (t TimeString) IsBefore(other TimeString) bool {
	return string(t) < string(other)
}

// IsAfter возвращает true, если t строго позже other
func (t TimeString) IsAfter(other TimeString) bool {
	return string(t) > string(other)
}

// AddMinutes возвращает время, сдвинутое на minutes минут вперед
// Переход через полночь обрезается до 23:59 (окна не пересекают сутки)
func (t TimeString) AddMinutes(minutes int) (TimeString, error) {
	parsed, err := time.Parse(timeFormat, string(t))
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidTimeFormat, string(t))
	}

	shifted := parsed.Add(time.Duration(minutes) * time.Minute)

	// Если вышли за пределы суток - обрезаем до конца дня
	if shifted.Day() != parsed.Day() {
		return TimeString("23:59"), nil
	}

	return TimeString(shifted.Format(timeFormat)), nil
}

// MarshalJSON сериализует время в JSON строку
func (t TimeString) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(t))
}

// UnmarshalJSON десериализует время из JSON строки с валидацией
func (t *TimeString) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}

	ts := TimeString(s)
	if err := ts.Validate(); err != nil {
		return err
	}

	*t = ts
	return nil
}

// Value реализует driver.Valuer для записи в БД
func (t TimeString) Value() (driver.Value, error) {
	if t.IsZero() {
		return nil, nil
	}
	return string(t), nil
}

// Scan реализует sql.Scanner для чтения из БД
// Поддерживает string, []byte и time.Time (колонки TIME)
func (t *TimeString) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*t = ""
		return nil
	case string:
		*t = truncateToMinutes(v)
		return nil
	case []byte:
		*t = truncateToMinutes(string(v))
		return nil
	case time.Time:
		*t = NewTimeString(v)
		return nil
	default:
		return fmt.Errorf("types: cannot scan %T into TimeString", src)
	}
}

// truncateToMinutes обрезает "HH:MM:SS" до "HH:MM"
func truncateToMinutes(s string) TimeString {
	if len(s) > 5 {
		return TimeString(s[:5])
	}
	return TimeString(s)
}
