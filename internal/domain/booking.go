package domain

import "time"

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCancelled BookingStatus = "cancelled"

	// StatusCompleted проекция на чтение: подтверждённое бронирование,
	// у которого end_time уже в прошлом. В БД никогда не записывается
	StatusCompleted BookingStatus = "completed"
)

// Booking represents a parking space booking in the system
type Booking struct {
	ID      int64
	SpaceID int64
	// SeekerID арендатор, создавший запрос
	SeekerID int64
	// OwnerID владелец площадки, денормализуется при создании:
	// право принимать решение по бронированию не зависит от смены данных площадки
	OwnerID int64

	StartTime time.Time
	EndTime   time.Time

	// TotalPrice вычисляется один раз при создании и больше не пересчитывается
	TotalPrice float64

	Status BookingStatus

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsPending returns true if the booking is awaiting the owner's decision
func (b *Booking) IsPending() bool {
	return b.Status == StatusPending
}

// IsTerminal returns true if no transition exists out of the current status
func (b *Booking) IsTerminal() bool {
	return b.Status == StatusConfirmed || b.Status == StatusCancelled
}

// CanBeDecided returns true if the owner can still approve or reject the booking
func (b *Booking) CanBeDecided() bool {
	return b.Status == StatusPending
}

// EffectiveStatus возвращает статус для отображения:
// подтверждённое бронирование с прошедшим end_time показывается как completed,
// хранимый статус при этом не меняется
func (b *Booking) EffectiveStatus(now time.Time) BookingStatus {
	if b.Status == StatusConfirmed && now.After(b.EndTime) {
		return StatusCompleted
	}
	return b.Status
}

// OwnerBookingsFilter фильтр для получения бронирований владельца
type OwnerBookingsFilter struct {
	OwnerID int64          // Обязательный параметр
	SpaceID *int64         // Фильтр по площадке (опционально)
	Status  *BookingStatus // Фильтр по статусу (опционально)
}
