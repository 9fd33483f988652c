package update_turno

import (
	"context"

	updateTurno "github.com/falvarezg/turnos-service/internal/usecase/update_turno"
)

type UpdateTurnoUseCase interface {
	Execute(ctx context.Context, req *updateTurno.Request) (*updateTurno.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
