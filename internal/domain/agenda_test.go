package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/falvarezg/turnos-service/pkg/types"
)

func TestAgendaSlots_Default(t *testing.T) {
	agenda := DefaultAgenda()
	slots := agenda.Slots()

	// 09:00 .. 16:30 cada 30 minutos, ambos extremos incluidos
	require.Len(t, slots, 16)
	assert.Equal(t, types.TimeString("09:00"), slots[0])
	assert.Equal(t, types.TimeString("09:30"), slots[1])
	assert.Equal(t, types.TimeString("16:30"), slots[15])
}

func TestAgendaSlots_IntervaloCustom(t *testing.T) {
	agenda, err := NewAgenda("10:00", "12:00", 60)
	require.NoError(t, err)

	assert.Equal(t, []types.TimeString{"10:00", "11:00", "12:00"}, agenda.Slots())
}

func TestAgendaDentroDeVentana(t *testing.T) {
	agenda := DefaultAgenda()

	assert.True(t, agenda.DentroDeVentana("09:00"))
	assert.True(t, agenda.DentroDeVentana("16:30"))
	assert.True(t, agenda.DentroDeVentana("12:15"))
	assert.False(t, agenda.DentroDeVentana("08:30"))
	assert.False(t, agenda.DentroDeVentana("17:00"))
}

func TestAgendaAlineadaAlIntervalo(t *testing.T) {
	agenda := DefaultAgenda()

	assert.True(t, agenda.AlineadaAlIntervalo("09:00"))
	assert.True(t, agenda.AlineadaAlIntervalo("14:30"))
	assert.False(t, agenda.AlineadaAlIntervalo("09:15"))
	assert.False(t, agenda.AlineadaAlIntervalo("17:00"))
}

func TestNewAgenda_Invalida(t *testing.T) {
	tests := []struct {
		name      string
		inicio    string
		fin       string
		intervalo int
	}{
		{"hora_inicio mal formada", "9am", "16:30", 30},
		{"hora_fin mal formada", "09:00", "16h30", 30},
		{"intervalo cero", "09:00", "16:30", 0},
		{"fin antes de inicio", "16:30", "09:00", 30},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewAgenda(tt.inicio, tt.fin, tt.intervalo)
			assert.ErrorIs(t, err, ErrAgendaInvalida)
		})
	}
}
