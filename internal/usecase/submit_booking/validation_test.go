package submit_booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/parkshare/PSM-BookingService/internal/domain"
	"github.com/parkshare/PSM-BookingService/pkg/types"
)

func testWindow(t *testing.T) domain.AvailabilityWindow {
	t.Helper()

	timeFrom, err := types.NewTimeStringFromString("08:00")
	require.NoError(t, err)
	timeTo, err := types.NewTimeStringFromString("20:00")
	require.NoError(t, err)

	return domain.AvailabilityWindow{
		DateFrom: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		DateTo:   time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC),
		TimeFrom: timeFrom,
		TimeTo:   timeTo,
	}
}

func TestValidateWindow_Valid(t *testing.T) {
	window := testWindow(t)

	start := time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC)
	end := time.Date(2025, 6, 10, 11, 0, 0, 0, time.UTC)

	assert.NoError(t, validateWindow(window, start, end))
}

func TestValidateWindow_StartAtLowerTimeBound(t *testing.T) {
	window := testWindow(t)

	// Ровно 08:00 - допустимо, граница включительна
	start := time.Date(2025, 6, 10, 8, 0, 0, 0, time.UTC)
	end := time.Date(2025, 6, 10, 10, 0, 0, 0, time.UTC)

	assert.NoError(t, validateWindow(window, start, end))
}

func TestValidateWindow_StartJustBeforeLowerTimeBound(t *testing.T) {
	window := testWindow(t)

	// 07:59:59 усекается до 07:59 и отклоняется
	start := time.Date(2025, 6, 10, 7, 59, 59, 0, time.UTC)
	end := time.Date(2025, 6, 10, 10, 0, 0, 0, time.UTC)

	assert.ErrorIs(t, validateWindow(window, start, end), ErrOutOfRangeTime)
}

func TestValidateWindow_EndAtUpperTimeBound(t *testing.T) {
	window := testWindow(t)

	start := time.Date(2025, 6, 10, 18, 0, 0, 0, time.UTC)
	end := time.Date(2025, 6, 10, 20, 0, 0, 0, time.UTC)

	assert.NoError(t, validateWindow(window, start, end))
}

func TestValidateWindow_EndAfterUpperTimeBound(t *testing.T) {
	window := testWindow(t)

	start := time.Date(2025, 6, 10, 18, 0, 0, 0, time.UTC)
	end := time.Date(2025, 6, 10, 20, 1, 0, 0, time.UTC)

	assert.ErrorIs(t, validateWindow(window, start, end), ErrOutOfRangeTime)
}

func TestValidateWindow_UpperTimeBoundNotAppliedToStart(t *testing.T) {
	window := testWindow(t)

	// Начать можно и после time_to, важно лишь попасть в окно концом
	start := time.Date(2025, 6, 10, 21, 0, 0, 0, time.UTC)
	end := time.Date(2025, 6, 11, 10, 0, 0, 0, time.UTC)

	assert.NoError(t, validateWindow(window, start, end))
}

func TestValidateWindow_DateBeforeWindow(t *testing.T) {
	window := testWindow(t)

	start := time.Date(2025, 5, 31, 9, 0, 0, 0, time.UTC)
	end := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

	assert.ErrorIs(t, validateWindow(window, start, end), ErrOutOfRangeDate)
}

func TestValidateWindow_DateAfterWindow(t *testing.T) {
	window := testWindow(t)

	start := time.Date(2025, 6, 30, 9, 0, 0, 0, time.UTC)
	end := time.Date(2025, 7, 1, 10, 0, 0, 0, time.UTC)

	assert.ErrorIs(t, validateWindow(window, start, end), ErrOutOfRangeDate)
}

func TestValidateWindow_BoundaryDatesInclusive(t *testing.T) {
	window := testWindow(t)

	// Первый и последний день окна допустимы
	start := time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)
	end := time.Date(2025, 6, 30, 20, 0, 0, 0, time.UTC)

	assert.NoError(t, validateWindow(window, start, end))
}

func TestValidateWindow_EndNotAfterStart(t *testing.T) {
	window := testWindow(t)

	start := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)

	// Равенство и обратный порядок отклоняются
	assert.ErrorIs(t, validateWindow(window, start, start), ErrInvalidOrder)

	end := time.Date(2025, 6, 10, 11, 0, 0, 0, time.UTC)
	assert.ErrorIs(t, validateWindow(window, start, end), ErrInvalidOrder)
}

func TestValidateRequest_InvalidInput(t *testing.T) {
	start := time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC)
	end := time.Date(2025, 6, 10, 11, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		req  *Request
	}{
		{"zero space id", &Request{SpaceID: 0, SeekerID: 1, Start: start, End: end}},
		{"zero seeker id", &Request{SpaceID: 1, SeekerID: 0, Start: start, End: end}},
		{"zero start", &Request{SpaceID: 1, SeekerID: 1, End: end}},
		{"zero end", &Request{SpaceID: 1, SeekerID: 1, Start: start}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, validateRequest(tt.req), ErrInvalidInput)
		})
	}
}
