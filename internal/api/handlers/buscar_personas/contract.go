package buscar_personas

import (
	"context"

	"github.com/falvarezg/turnos-service/internal/service/personas/models"
)

type PersonaService interface {
	Buscar(ctx context.Context, req *models.BuscarPersonasRequest) (*models.PersonaPageResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
