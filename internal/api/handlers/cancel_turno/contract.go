package cancel_turno

import (
	"context"

	"github.com/falvarezg/turnos-service/internal/service/turnos/models"
)

type TurnoService interface {
	Cancel(ctx context.Context, id int64) (*models.TurnoResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
