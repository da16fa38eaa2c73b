package submit_booking

import "time"

// Request модель запроса на бронирование площадки
type Request struct {
	SpaceID  int64     // ID площадки
	SeekerID int64     // ID арендатора, подающего запрос
	Start    time.Time // Начало бронирования
	End      time.Time // Конец бронирования
}

// Response модель ответа с созданным запросом на бронирование
type Response struct {
	ID         int64     // ID созданного бронирования
	SpaceID    int64     // ID площадки
	SeekerID   int64     // ID арендатора
	OwnerID    int64     // ID владельца площадки (денормализован)
	Start      time.Time // Начало бронирования
	End        time.Time // Конец бронирования
	TotalPrice float64   // Итоговая цена, зафиксирована при создании
	Status     string    // Статус бронирования (pending)

	// Денормализованные данные площадки для формы подтверждения
	SpaceTitle   string
	SpaceAddress string

	CreatedAt time.Time // Время создания
	UpdatedAt time.Time // Время обновления
}
