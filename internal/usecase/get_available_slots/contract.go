package get_available_slots

import (
	"context"
	"time"

	"github.com/falvarezg/turnos-service/internal/domain"
	"github.com/falvarezg/turnos-service/pkg/types"
)

// TurnoRepository интерфейс репозитория турнов
type TurnoRepository interface {
	ListHorasOcupadas(ctx context.Context, fecha time.Time, estados []domain.EstadoTurno) ([]types.TimeString, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
