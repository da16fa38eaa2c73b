package submit_booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/parkshare/PSM-BookingService/pkg/ptr"
)

func TestCalculatePrice_HourlyOnly(t *testing.T) {
	price, err := calculatePrice(2, 50, nil)

	require.NoError(t, err)
	assert.Equal(t, 100.00, price)
}

func TestCalculatePrice_TieredWithDailyRate(t *testing.T) {
	// 30 часов = 1 полные сутки по 400 + 6 часов по 50
	price, err := calculatePrice(30, 50, ptr.Ptr(400.0))

	require.NoError(t, err)
	assert.Equal(t, 700.00, price)
}

func TestCalculatePrice_ExactlyOneDay(t *testing.T) {
	price, err := calculatePrice(24, 50, ptr.Ptr(400.0))

	require.NoError(t, err)
	assert.Equal(t, 400.00, price)
}

func TestCalculatePrice_BelowOneDayIgnoresDailyRate(t *testing.T) {
	// Меньше суток - почасовой тариф, даже если суточный был бы дешевле
	price, err := calculatePrice(10, 50, ptr.Ptr(400.0))

	require.NoError(t, err)
	assert.Equal(t, 500.00, price)
}

func TestCalculatePrice_NoDailyRateLongDuration(t *testing.T) {
	price, err := calculatePrice(30, 50, nil)

	require.NoError(t, err)
	assert.Equal(t, 1500.00, price)
}

func TestCalculatePrice_RoundsToCents(t *testing.T) {
	// 1.5 * 33.33 = 49.995 -> 50.00
	price, err := calculatePrice(1.5, 33.33, nil)

	require.NoError(t, err)
	assert.Equal(t, 50.00, price)
}

func TestCalculatePrice_FractionalHours(t *testing.T) {
	// 90 минут по 50/час
	price, err := calculatePrice(1.5, 50, nil)

	require.NoError(t, err)
	assert.Equal(t, 75.00, price)
}

func TestCalculatePrice_NonPositiveDuration(t *testing.T) {
	_, err := calculatePrice(0, 50, nil)
	assert.ErrorIs(t, err, ErrNonPositiveDuration)

	_, err = calculatePrice(-2, 50, nil)
	assert.ErrorIs(t, err, ErrNonPositiveDuration)
}

func TestCalculatePrice_Deterministic(t *testing.T) {
	// Цена фиксируется при создании: повторный расчёт от тех же входов
	// обязан давать тот же результат
	first, err := calculatePrice(30, 50, ptr.Ptr(400.0))
	require.NoError(t, err)

	second, err := calculatePrice(30, 50, ptr.Ptr(400.0))
	require.NoError(t, err)

	assert.Equal(t, first, second)
}
