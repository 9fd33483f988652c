package update_turno

import (
	"context"
	"time"

	"github.com/falvarezg/turnos-service/internal/domain"
	"github.com/falvarezg/turnos-service/pkg/types"
)

// TurnoRepository интерфейс репозитория турнов
type TurnoRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Turno, error)
	GetByFechaHora(ctx context.Context, fecha time.Time, hora types.TimeString, estados []domain.EstadoTurno, excludeID *int64) (*domain.Turno, error)
	Update(ctx context.Context, id int64, turno *domain.Turno) (*domain.Turno, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
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
