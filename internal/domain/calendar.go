package domain

import (
	"errors"
	"time"
)

var (
	// ErrFechaNacimientoInvalida возвращается при отсутствующей дате рождения
	ErrFechaNacimientoInvalida = errors.New("domain: invalid fecha de nacimiento")
)

// Edad returns the age in whole years at hoy for someone born on
// fechaNacimiento: the year difference, minus one when (month, day) of hoy
// is still earlier than the birthday.
func Edad(fechaNacimiento, hoy time.Time) (int, error) {
	if fechaNacimiento.IsZero() {
		return 0, ErrFechaNacimientoInvalida
	}

	edad := hoy.Year() - fechaNacimiento.Year()

	hm, hd := hoy.Month(), hoy.Day()
	bm, bd := fechaNacimiento.Month(), fechaNacimiento.Day()
	if hm < bm || (hm == bm && hd < bd) {
		edad--
	}

	return edad, nil
}

// EsDomingo reports whether fecha falls on a Sunday, the clinic's
// non-operating day.
func EsDomingo(fecha time.Time) bool {
	return fecha.Weekday() == time.Sunday
}

// MismoDia reports whether two instants fall on the same calendar day.
func MismoDia(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// FechaPasada reports whether fecha is strictly before the day of hoy,
// comparing dates only.
func FechaPasada(fecha, hoy time.Time) bool {
	fechaOnly := time.Date(fecha.Year(), fecha.Month(), fecha.Day(), 0, 0, 0, 0, fecha.Location())
	hoyOnly := time.Date(hoy.Year(), hoy.Month(), hoy.Day(), 0, 0, 0, 0, hoy.Location())
	return fechaOnly.Before(hoyOnly)
}

// SoloFecha truncates an instant to its calendar date.
func SoloFecha(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
