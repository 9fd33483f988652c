package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	ts, err := NewTimeStringFromString("09:30")
	require.NoError(t, err)
	assert.Equal(t, TimeString("09:30"), ts)

	// Без ведущего нуля нормализуется
	ts, err = NewTimeStringFromString("9:00")
	require.NoError(t, err)
	assert.Equal(t, TimeString("09:00"), ts)

	for _, raw := range []string{"", "25:00", "09:60", "0930", "nueve"} {
		_, err := NewTimeStringFromString(raw)
		assert.ErrorIs(t, err, ErrInvalidTimeString, "raw=%q", raw)
	}
}

func TestTimeStringAddMinutes(t *testing.T) {
	ts := TimeString("09:30")

	next, err := ts.AddMinutes(30)
	require.NoError(t, err)
	assert.Equal(t, TimeString("10:00"), next)

	// Переход через полночь заворачивается
	late := TimeString("23:45")
	next, err = late.AddMinutes(30)
	require.NoError(t, err)
	assert.Equal(t, TimeString("00:15"), next)
}

func TestTimeStringOrdering(t *testing.T) {
	assert.True(t, TimeString("09:00").IsBefore("16:30"))
	assert.True(t, TimeString("16:30").IsAfter("09:00"))
	assert.False(t, TimeString("12:00").IsBefore("12:00"))
	assert.False(t, TimeString("12:00").IsAfter("12:00"))
}

func TestTimeStringScan(t *testing.T) {
	var ts TimeString

	require.NoError(t, ts.Scan("14:30:00"))
	assert.Equal(t, TimeString("14:30"), ts)

	require.NoError(t, ts.Scan([]byte("09:00")))
	assert.Equal(t, TimeString("09:00"), ts)

	require.NoError(t, ts.Scan(time.Date(2025, 11, 22, 16, 30, 0, 0, time.UTC)))
	assert.Equal(t, TimeString("16:30"), ts)

	require.NoError(t, ts.Scan(nil))
	assert.True(t, ts.IsZero())

	assert.Error(t, ts.Scan(42))
}

func TestTimeStringValue(t *testing.T) {
	v, err := TimeString("10:00").Value()
	require.NoError(t, err)
	assert.Equal(t, "10:00", v)
}
