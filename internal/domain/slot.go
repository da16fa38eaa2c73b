package domain

import "time"

// BookingSlot зафиксированная бронь площадки
// Создаётся ровно один раз - в момент перехода бронирования в confirmed,
// после создания не изменяется. Наличие хотя бы одного слота у площадки
// скрывает её из выдачи для всех будущих запросов
type BookingSlot struct {
	ID        int64
	SpaceID   int64
	BookingID int64

	// Копия окна бронирования на момент подтверждения
	StartTime time.Time
	EndTime   time.Time

	CreatedAt time.Time
}
