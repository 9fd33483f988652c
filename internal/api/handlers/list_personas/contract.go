package list_personas

import (
	"context"

	"github.com/falvarezg/turnos-service/internal/service/personas/models"
)

type PersonaService interface {
	List(ctx context.Context, skip, limit int) (*models.PersonaListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
