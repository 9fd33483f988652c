package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fecha(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestEdad(t *testing.T) {
	tests := []struct {
		name       string
		nacimiento time.Time
		hoy        time.Time
		expected   int
	}{
		{
			name:       "cumpleaños ya pasó este año",
			nacimiento: fecha(1990, 5, 15),
			hoy:        fecha(2025, 11, 22),
			expected:   35,
		},
		{
			name:       "cumpleaños todavía no llegó",
			nacimiento: fecha(1990, 12, 1),
			hoy:        fecha(2025, 11, 22),
			expected:   34,
		},
		{
			name:       "hoy es el cumpleaños",
			nacimiento: fecha(2000, 11, 22),
			hoy:        fecha(2025, 11, 22),
			expected:   25,
		},
		{
			name:       "un día antes del cumpleaños",
			nacimiento: fecha(2000, 11, 23),
			hoy:        fecha(2025, 11, 22),
			expected:   24,
		},
		{
			name:       "recién nacido",
			nacimiento: fecha(2025, 11, 22),
			hoy:        fecha(2025, 11, 22),
			expected:   0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			edad, err := Edad(tt.nacimiento, tt.hoy)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, edad)
		})
	}
}

func TestEdad_FechaNacimientoCero(t *testing.T) {
	_, err := Edad(time.Time{}, fecha(2025, 11, 22))
	assert.ErrorIs(t, err, ErrFechaNacimientoInvalida)
}

func TestEsDomingo(t *testing.T) {
	assert.True(t, EsDomingo(fecha(2025, 11, 23)))
	assert.False(t, EsDomingo(fecha(2025, 11, 22)))
	assert.False(t, EsDomingo(fecha(2025, 11, 24)))
}

func TestFechaPasada(t *testing.T) {
	hoy := time.Date(2025, 11, 22, 15, 30, 0, 0, time.UTC)

	assert.True(t, FechaPasada(fecha(2025, 11, 21), hoy))
	// Mismo día no cuenta como pasado, aunque hoy tenga hora avanzada
	assert.False(t, FechaPasada(fecha(2025, 11, 22), hoy))
	assert.False(t, FechaPasada(fecha(2025, 11, 23), hoy))
}

func TestSoloFecha(t *testing.T) {
	instante := time.Date(2025, 11, 22, 15, 30, 45, 999, time.UTC)
	assert.Equal(t, fecha(2025, 11, 22), SoloFecha(instante))
}

func TestMismoDia(t *testing.T) {
	a := time.Date(2025, 11, 22, 0, 1, 0, 0, time.UTC)
	b := time.Date(2025, 11, 22, 23, 59, 0, 0, time.UTC)
	assert.True(t, MismoDia(a, b))
	assert.False(t, MismoDia(a, fecha(2025, 11, 23)))
}
