package list_turnos

import (
	"context"

	"github.com/falvarezg/turnos-service/internal/service/turnos/models"
)

type TurnoService interface {
	List(ctx context.Context, skip, limit int) (*models.TurnoListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
