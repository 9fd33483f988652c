package domain

import (
	"errors"
	"fmt"

	"github.com/falvarezg/turnos-service/pkg/types"
)

var (
	// ErrAgendaInvalida возвращается при некорректной конфигурации агенды
	ErrAgendaInvalida = errors.New("domain: invalid agenda configuration")
)

// Agenda is the clinic's operating window: first slot, last slot (inclusive)
// and the step between slots. Built once from configuration and injected
// into everything that validates or generates slots.
type Agenda struct {
	HoraInicio       types.TimeString
	HoraFin          types.TimeString // last bookable slot, inclusive
	IntervaloMinutos int
}

// DefaultAgenda returns the 09:00-16:30 / 30 minute window.
func DefaultAgenda() Agenda {
	return Agenda{
		HoraInicio:       types.TimeString(DefaultHoraInicio),
		HoraFin:          types.TimeString(DefaultHoraFin),
		IntervaloMinutos: DefaultIntervaloMinutos,
	}
}

// NewAgenda validates and builds an agenda from configuration values.
func NewAgenda(horaInicio, horaFin string, intervaloMinutos int) (Agenda, error) {
	inicio, err := types.NewTimeStringFromString(horaInicio)
	if err != nil {
		return Agenda{}, fmt.Errorf("%w: hora_inicio: %v", ErrAgendaInvalida, err)
	}
	fin, err := types.NewTimeStringFromString(horaFin)
	if err != nil {
		return Agenda{}, fmt.Errorf("%w: hora_fin: %v", ErrAgendaInvalida, err)
	}
	if intervaloMinutos <= 0 {
		return Agenda{}, fmt.Errorf("%w: intervalo_minutos must be positive", ErrAgendaInvalida)
	}
	if fin.IsBefore(inicio) {
		return Agenda{}, fmt.Errorf("%w: hora_fin before hora_inicio", ErrAgendaInvalida)
	}
	return Agenda{HoraInicio: inicio, HoraFin: fin, IntervaloMinutos: intervaloMinutos}, nil
}

// DentroDeVentana reports whether hora falls inside [HoraInicio, HoraFin].
func (a Agenda) DentroDeVentana(hora types.TimeString) bool {
	return !hora.IsBefore(a.HoraInicio) && !hora.IsAfter(a.HoraFin)
}

// AlineadaAlIntervalo reports whether hora sits on an interval boundary
// counted from HoraInicio (with the default agenda: minute 0 or 30).
func (a Agenda) AlineadaAlIntervalo(hora types.TimeString) bool {
	for _, slot := range a.Slots() {
		if slot == hora {
			return true
		}
	}
	return false
}

// Slots generates the full slot grid for a day in ascending order, from
// HoraInicio to HoraFin inclusive, stepping IntervaloMinutos. The grid is
// deterministic and never stored.
func (a Agenda) Slots() []types.TimeString {
	slots := make([]types.TimeString, 0)
	current := a.HoraInicio
	for {
		if current.IsAfter(a.HoraFin) {
			break
		}
		slots = append(slots, current)
		next, err := current.AddMinutes(a.IntervaloMinutos)
		if err != nil {
			break
		}
		// AddMinutes wraps past midnight; a wrapped value sorts before the
		// current one and would loop forever.
		if !next.IsAfter(current) {
			break
		}
		current = next
	}
	return slots
}
