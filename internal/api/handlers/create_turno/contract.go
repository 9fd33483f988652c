package create_turno

import (
	"context"

	createTurno "github.com/falvarezg/turnos-service/internal/usecase/create_turno"
)

type CreateTurnoUseCase interface {
	Execute(ctx context.Context, req *createTurno.Request) (*createTurno.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
