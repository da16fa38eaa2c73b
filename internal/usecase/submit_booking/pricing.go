package submit_booking

import (
	"math"

	"github.com/parkshare/PSM-BookingService/internal/domain"
)

// calculatePrice вычисляет цену бронирования по тарифам площадки
// Чистая функция: одинаковые входы всегда дают одинаковый результат,
// потому что цена фиксируется при создании и никогда не пересчитывается
//
// Без суточного тарифа (или при длительности меньше суток) цена почасовая
// При длительности от 24 часов и наличии суточного тарифа полные сутки
// тарифицируются по price_per_day, остаток часов - по price_per_hour
func calculatePrice(durationHours, pricePerHour float64, pricePerDay *float64) (float64, error) {
	if durationHours <= 0 {
		return 0, ErrNonPositiveDuration
	}

	price := durationHours * pricePerHour

	if pricePerDay != nil && durationHours >= domain.HoursPerDay {
		fullDays := math.Floor(durationHours / domain.HoursPerDay)
		remainderHours := math.Mod(durationHours, domain.HoursPerDay)
		price = fullDays*(*pricePerDay) + remainderHours*pricePerHour
	}

	return roundToCents(price), nil
}

// roundToCents округляет до двух знаков (до цента, half-up)
func roundToCents(price float64) float64 {
	return math.Round(price*100) / 100
}
