package update_turno

import (
	"time"

	"github.com/falvarezg/turnos-service/pkg/types"
)

// Request модель запроса на обновление турно. Только переданные поля
// меняются; остальные берутся из текущей строки.
type Request struct {
	TurnoID int64
	Fecha   *time.Time
	Hora    *types.TimeString
	Estado  *string // метка состояния, сравнивается без учета регистра
}

// Response модель ответа с обновленным турно
type Response struct {
	ID        int64
	PersonaID int64
	Fecha     time.Time
	Hora      types.TimeString
	Estado    string
	CreatedAt time.Time
	UpdatedAt time.Time
}
