package personas

import (
	"context"
	"time"

	"github.com/falvarezg/turnos-service/internal/domain"
)

// PersonaRepository интерфейс репозитория персон
type PersonaRepository interface {
	Create(ctx context.Context, p *domain.Persona) (*domain.Persona, error)
	GetByID(ctx context.Context, id int64) (*domain.Persona, error)
	GetByDNI(ctx context.Context, dni string) (*domain.Persona, error)
	List(ctx context.Context, offset, limit int) ([]*domain.Persona, error)
	ListByHabilitado(ctx context.Context, habilitado bool) ([]*domain.Persona, error)
	ListFiltered(ctx context.Context, filter domain.PersonaFilter, hoy time.Time, offset, limit int) ([]*domain.Persona, error)
	CountFiltered(ctx context.Context, filter domain.PersonaFilter, hoy time.Time) (int, error)
	Update(ctx context.Context, id int64, p *domain.Persona) (*domain.Persona, error)
	Delete(ctx context.Context, id int64) error
}

// TurnoRepository интерфейс репозитория турнов
type TurnoRepository interface {
	CountWithFilter(ctx context.Context, filter domain.TurnoFilter) (int, error)
	DeleteByPersonaEstado(ctx context.Context, personaID int64, estado domain.EstadoTurno) (int64, error)
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
