package domain

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// HoursPerDay количество часов в полных сутках для тарификации
const HoursPerDay = 24.0

// Business validation constants
const (
	MinCapacity     = 1
	MinPricePerHour = 0.0 // цена строго больше нуля
)

// TerminalStatuses список терминальных статусов бронирования
// Из этих статусов нет переходов
var TerminalStatuses = []BookingStatus{
	StatusConfirmed,
	StatusCancelled,
}

// AllStatuses список всех хранимых статусов бронирования
// StatusCompleted не хранится - это проекция на чтение
var AllStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
	StatusCancelled,
}
