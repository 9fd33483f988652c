package create_turno

import (
	"time"

	"github.com/falvarezg/turnos-service/pkg/types"
)

// Request модель запроса на создание турно
type Request struct {
	PersonaID int64            // ID персоны
	Fecha     time.Time        // Дата турно (без времени)
	Hora      types.TimeString // Час слота (например, "09:00")
}

// Response модель ответа с созданным турно
type Response struct {
	ID        int64
	PersonaID int64
	Fecha     time.Time
	Hora      types.TimeString
	Estado    string

	// Данные персоны на момент создания
	PersonaNombre string
	PersonaDNI    string
	PersonaEmail  string
	PersonaEdad   int

	CreatedAt time.Time
	UpdatedAt time.Time
}
