package csvexport

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/falvarezg/turnos-service/internal/service/reports/models"
)

func TestWrite(t *testing.T) {
	table := models.Table{
		Title:   "Turnos de Juan Pérez",
		Headers: []string{"fecha", "hora", "estado"},
		Rows: [][]string{
			{"2025-11-22", "09:00", "Pendiente"},
			{"2025-11-24", "14:30", "Confirmado"},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, table))

	expected := "fecha,hora,estado\n" +
		"2025-11-22,09:00,Pendiente\n" +
		"2025-11-24,14:30,Confirmado\n"
	assert.Equal(t, expected, buf.String())
}

func TestWrite_SinFilas(t *testing.T) {
	table := models.Table{
		Headers: []string{"dni", "cancelaciones"},
	}

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, table))

	assert.Equal(t, "dni,cancelaciones\n", buf.String())
}

func TestWrite_EscapaSeparadores(t *testing.T) {
	table := models.Table{
		Headers: []string{"nombre"},
		Rows:    [][]string{{"Pérez, Juan"}},
	}

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, table))

	assert.Equal(t, "nombre\n\"Pérez, Juan\"\n", buf.String())
}
