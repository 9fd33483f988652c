package get_persona

import (
	"context"

	"github.com/falvarezg/turnos-service/internal/service/personas/models"
)

type PersonaService interface {
	GetByID(ctx context.Context, id int64) (*models.PersonaResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
