package eligibility

import (
	"context"

	"github.com/falvarezg/turnos-service/internal/domain"
)

// TurnoRepository интерфейс репозитория турнов
type TurnoRepository interface {
	CountWithFilter(ctx context.Context, filter domain.TurnoFilter) (int, error)
}

// PersonaRepository интерфейс репозитория персон
type PersonaRepository interface {
	SetHabilitado(ctx context.Context, id int64, habilitado bool) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
