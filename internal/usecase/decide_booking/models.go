package decide_booking

import "time"

// Decision решение владельца по запросу на бронирование
type Decision string

const (
	DecisionApprove Decision = "approve"
	DecisionReject  Decision = "reject"
)

// ParseDecision конвертирует строку в Decision с валидацией
func ParseDecision(s string) (Decision, error) {
	switch Decision(s) {
	case DecisionApprove:
		return DecisionApprove, nil
	case DecisionReject:
		return DecisionReject, nil
	default:
		return "", ErrInvalidDecision
	}
}

// Request модель запроса на решение по бронированию
type Request struct {
	BookingID int64    // ID бронирования
	OwnerID   int64    // ID владельца, принимающего решение
	Decision  Decision // approve | reject
}

// Response модель ответа с бронированием после решения
type Response struct {
	ID         int64     // ID бронирования
	SpaceID    int64     // ID площадки
	SeekerID   int64     // ID арендатора
	OwnerID    int64     // ID владельца
	Start      time.Time // Начало бронирования
	End        time.Time // Конец бронирования
	TotalPrice float64   // Итоговая цена
	Status     string    // Статус после решения (confirmed | cancelled)

	CreatedAt time.Time // Время создания
	UpdatedAt time.Time // Время обновления
}
