package create_persona

import (
	"context"

	"github.com/falvarezg/turnos-service/internal/service/personas/models"
)

type PersonaService interface {
	Create(ctx context.Context, req *models.CreatePersonaRequest) (*models.PersonaResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
