package turnos

import (
	"context"
	"time"

	"github.com/falvarezg/turnos-service/internal/domain"
)

// TurnoRepository интерфейс репозитория турнов
type TurnoRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Turno, error)
	GetConPersonaByID(ctx context.Context, id int64) (*domain.TurnoConPersona, error)
	ListConPersonaPaginated(ctx context.Context, filter domain.TurnoFilter, offset, limit int) ([]*domain.TurnoConPersona, error)
	UpdateEstado(ctx context.Context, id int64, estado domain.EstadoTurno) error
	Delete(ctx context.Context, id int64) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
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
