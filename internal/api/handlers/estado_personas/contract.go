package estado_personas

import (
	"context"

	"github.com/falvarezg/turnos-service/internal/service/personas/models"
)

type PersonaService interface {
	ListByEstado(ctx context.Context, habilitado bool) (*models.PersonaListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
