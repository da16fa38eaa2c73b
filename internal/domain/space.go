package domain

import (
	"time"

	"github.com/parkshare/PSM-BookingService/pkg/types"
)

// AvailabilityWindow объявленное владельцем окно доступности площадки
// Даты включительны с обеих сторон и сравниваются с точностью до дня,
// время - границы суточного интервала в формате HH:MM
type AvailabilityWindow struct {
	DateFrom time.Time
	DateTo   time.Time
	TimeFrom types.TimeString
	TimeTo   types.TimeString
}

// ParkingSpace represents a parking space listed by an owner
type ParkingSpace struct {
	ID      int64
	OwnerID int64 // владелец не меняется за время жизни площадки

	Title   string
	Address string

	// IsAvailable флаг владельца "площадка опубликована"
	// Не путать с offerable: подтверждённое бронирование скрывает
	// площадку независимо от этого флага
	IsAvailable bool

	DateFrom time.Time
	DateTo   time.Time
	TimeFrom types.TimeString
	TimeTo   types.TimeString

	PricePerHour float64
	PricePerDay  *float64 // nil = тарификация только почасовая
	Capacity     int

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Window returns the space's declared availability window
func (s *ParkingSpace) Window() AvailabilityWindow {
	return AvailabilityWindow{
		DateFrom: s.DateFrom,
		DateTo:   s.DateTo,
		TimeFrom: s.TimeFrom,
		TimeTo:   s.TimeTo,
	}
}

// HasDailyRate returns true if the space has a daily rate for full 24h blocks
func (s *ParkingSpace) HasDailyRate() bool {
	return s.PricePerDay != nil
}
