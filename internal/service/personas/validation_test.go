package personas

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/falvarezg/turnos-service/pkg/ptr"
)

var hoy = time.Date(2025, 11, 22, 0, 0, 0, 0, time.UTC)

func TestNormalizeNombre(t *testing.T) {
	tests := []struct {
		raw      string
		expected string
	}{
		{"juan pérez", "Juan Pérez"},
		{"MARÍA GARCÍA", "María García"},
		{"  ana   lópez  ", "Ana López"},
		{"ñandú", "Ñandú"},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := normalizeNombre(tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestNormalizeNombre_Invalido(t *testing.T) {
	for _, raw := range []string{"", "J", "Juan123", "Juan_Pérez", "a b c d e f g h i j k l m n o p q r s t u v w x y z a b c d e f g h i j k l m n o p q r s t u v w x y z"} {
		_, err := normalizeNombre(raw)
		assert.ErrorIs(t, err, ErrInvalidInput, "raw=%q", raw)
	}
}

func TestNormalizeEmail(t *testing.T) {
	got, err := normalizeEmail("  Juan.Perez@Example.COM ")
	require.NoError(t, err)
	assert.Equal(t, "juan.perez@example.com", got)

	for _, raw := range []string{"", "no-arroba", "a@b", "a@b.", "@example.com"} {
		_, err := normalizeEmail(raw)
		assert.ErrorIs(t, err, ErrInvalidInput, "raw=%q", raw)
	}
}

func TestValidateDNI(t *testing.T) {
	got, err := validateDNI(" 12345678 ")
	require.NoError(t, err)
	assert.Equal(t, "12345678", got)

	for _, raw := range []string{"", "1234567", "123456789", "1234567a", "12.345.678"} {
		_, err := validateDNI(raw)
		assert.ErrorIs(t, err, ErrInvalidInput, "raw=%q", raw)
	}
}

func TestNormalizeTelefono(t *testing.T) {
	got, err := normalizeTelefono("+54 (911) 2233-4455")
	require.NoError(t, err)
	assert.Equal(t, "+5491122334455", got)

	// Vacío es válido: el teléfono es opcional
	got, err = normalizeTelefono("   ")
	require.NoError(t, err)
	assert.Equal(t, "", got)

	for _, raw := range []string{"123", "12345678901234567890", "telefono"} {
		_, err := normalizeTelefono(raw)
		assert.ErrorIs(t, err, ErrInvalidInput, "raw=%q", raw)
	}
}

func TestParseFechaNacimiento(t *testing.T) {
	fecha, err := parseFechaNacimiento("1990-05-15", hoy)
	require.NoError(t, err)
	assert.Equal(t, time.Date(1990, 5, 15, 0, 0, 0, 0, time.UTC), fecha)

	tests := []struct {
		name string
		raw  string
	}{
		{"formato incorrecto", "15/05/1990"},
		{"vacía", ""},
		{"antes de 1900", "1899-12-31"},
		{"futura", "2026-01-01"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseFechaNacimiento(tt.raw, hoy)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestValidateOrdering(t *testing.T) {
	orderBy, order, err := validateOrdering("", "")
	require.NoError(t, err)
	assert.Equal(t, "id", orderBy)
	assert.Equal(t, "asc", order)

	orderBy, order, err = validateOrdering("EDAD", "DESC")
	require.NoError(t, err)
	assert.Equal(t, "edad", orderBy)
	assert.Equal(t, "desc", order)

	_, _, err = validateOrdering("telefono", "asc")
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, _, err = validateOrdering("id", "descending")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestValidateEdadRange(t *testing.T) {
	assert.NoError(t, validateEdadRange(nil, nil))
	assert.NoError(t, validateEdadRange(ptr.Ptr(18), ptr.Ptr(65)))

	assert.ErrorIs(t, validateEdadRange(ptr.Ptr(-1), nil), ErrInvalidInput)
	assert.ErrorIs(t, validateEdadRange(nil, ptr.Ptr(200)), ErrInvalidInput)
	assert.ErrorIs(t, validateEdadRange(ptr.Ptr(65), ptr.Ptr(18)), ErrInvalidInput)
}
