package domain

import (
	"time"

	"github.com/falvarezg/turnos-service/pkg/types"
)

// Turno represents an appointment slot reservation tied to one Persona.
type Turno struct {
	ID        int64
	PersonaID int64
	Fecha     time.Time        // calendar date, time part zeroed
	Hora      types.TimeString // "HH:MM"
	Estado    EstadoTurno

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TurnoFilter фильтр для выборки турносов
type TurnoFilter struct {
	PersonaID *int64
	Fecha     *time.Time
	Desde     *time.Time
	Hasta     *time.Time
	Estado    *EstadoTurno
	Estados   []EstadoTurno // matches any of the listed statuses
}

// TurnoConPersona is a turno joined with its owning persona.
type TurnoConPersona struct {
	Turno   Turno
	Persona Persona
}
