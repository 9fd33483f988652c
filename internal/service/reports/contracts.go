package reports

import (
	"context"
	"time"

	"github.com/falvarezg/turnos-service/internal/domain"
)

// TurnoRepository интерфейс репозитория турнов
type TurnoRepository interface {
	ListConPersona(ctx context.Context, filter domain.TurnoFilter) ([]*domain.TurnoConPersona, error)
	ListConPersonaPaginated(ctx context.Context, filter domain.TurnoFilter, offset, limit int) ([]*domain.TurnoConPersona, error)
	ListWithFilter(ctx context.Context, filter domain.TurnoFilter) ([]*domain.Turno, error)
	CountWithFilter(ctx context.Context, filter domain.TurnoFilter) (int, error)
}

// PersonaRepository интерфейс репозитория персон
type PersonaRepository interface {
	GetByDNI(ctx context.Context, dni string) (*domain.Persona, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестируемости)
type TimeProvider interface {
	Now() time.Time
}

// RealTimeProvider реальная реализация TimeProvider
type RealTimeProvider struct{}

// Now возвращает текущее время
func (r *RealTimeProvider) Now() time.Time {
	return time.Now()
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
