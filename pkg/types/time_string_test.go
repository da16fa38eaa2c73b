package types

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeString_TruncatesSeconds(t *testing.T) {
	// 07:59:59 становится 07:59 - секунды отбрасываются, не округляются
	ts := NewTimeString(time.Date(2025, 6, 10, 7, 59, 59, 0, time.UTC))
	assert.Equal(t, TimeString("07:59"), ts)
}

func TestNewTimeStringFromString(t *testing.T) {
	ts, err := NewTimeStringFromString("08:00")
	require.NoError(t, err)
	assert.Equal(t, TimeString("08:00"), ts)

	for _, invalid := range []string{"25:00", "08:60", "0800", "abc", ""} {
		_, err := NewTimeStringFromString(invalid)
		assert.ErrorIs(t, err, ErrInvalidTimeFormat, "input %q", invalid)
	}
}

func TestTimeString_Ordering(t *testing.T) {
	a := TimeString("08:00")
	b := TimeString("20:00")

	assert.True(t, a.IsBefore(b))
	assert.True(t, b.IsAfter(a))
	assert.False(t, a.IsBefore(a))
	assert.False(t, a.IsAfter(a))
}

func TestTimeString_AddMinutes(t *testing.T) {
	ts := TimeString("08:30")

	next, err := ts.AddMinutes(45)
	require.NoError(t, err)
	assert.Equal(t, TimeString("09:15"), next)

	// Переход через полночь прижимается к концу суток
	late := TimeString("23:30")
	clamped, err := late.AddMinutes(60)
	require.NoError(t, err)
	assert.Equal(t, TimeString("23:59"), clamped)
}

func TestTimeString_JSON(t *testing.T) {
	data, err := json.Marshal(TimeString("08:00"))
	require.NoError(t, err)
	assert.Equal(t, `"08:00"`, string(data))

	var ts TimeString
	require.NoError(t, json.Unmarshal([]byte(`"20:00"`), &ts))
	assert.Equal(t, TimeString("20:00"), ts)

	assert.Error(t, json.Unmarshal([]byte(`"20-00"`), &ts))
}

func TestTimeString_Scan(t *testing.T) {
	var ts TimeString

	// PostgreSQL может вернуть TIME как "HH:MM:SS"
	require.NoError(t, ts.Scan("08:00:00"))
	assert.Equal(t, TimeString("08:00"), ts)

	require.NoError(t, ts.Scan([]byte("20:00")))
	assert.Equal(t, TimeString("20:00"), ts)
}
