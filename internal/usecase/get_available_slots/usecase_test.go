package get_available_slots

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/falvarezg/turnos-service/internal/domain"
	"github.com/falvarezg/turnos-service/pkg/types"
)

type MockTurnoRepository struct {
	mock.Mock
}

func (m *MockTurnoRepository) ListHorasOcupadas(ctx context.Context, fecha time.Time, estados []domain.EstadoTurno) ([]types.TimeString, error) {
	args := m.Called(ctx, fecha, estados)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]types.TimeString), args.Error(1)
}

type fixedTimeProvider struct {
	now time.Time
}

func (p fixedTimeProvider) Now() time.Time { return p.now }

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

var sabado = time.Date(2025, 11, 22, 0, 0, 0, 0, time.UTC)

func newTestUseCase(turnos *MockTurnoRepository) *UseCase {
	uc := NewUseCase(turnos, domain.DefaultAgenda(), domain.DefaultEstadoSet(), noopLogger{})
	uc.timeProvider = fixedTimeProvider{now: time.Date(2025, 11, 20, 10, 0, 0, 0, time.UTC)}
	return uc
}

func TestExecute_DiaLibre(t *testing.T) {
	turnos := new(MockTurnoRepository)
	uc := newTestUseCase(turnos)

	turnos.On("ListHorasOcupadas", mock.Anything, sabado, domain.DefaultEstadoSet().Ocupantes()).
		Return([]types.TimeString{}, nil)

	resp, err := uc.Execute(context.Background(), &Request{Fecha: sabado})

	require.NoError(t, err)
	assert.Equal(t, "2025-11-22", resp.Fecha)
	assert.Len(t, resp.Horarios, 16)
	assert.Equal(t, "09:00", resp.Horarios[0])
	assert.Equal(t, "16:30", resp.Horarios[15])
	assert.Equal(t, 30, resp.Intervalo)
}

func TestExecute_SlotsOcupadosSeRestan(t *testing.T) {
	turnos := new(MockTurnoRepository)
	uc := newTestUseCase(turnos)

	turnos.On("ListHorasOcupadas", mock.Anything, sabado, mock.Anything).
		Return([]types.TimeString{"09:00", "14:30"}, nil)

	resp, err := uc.Execute(context.Background(), &Request{Fecha: sabado})

	require.NoError(t, err)
	assert.Len(t, resp.Horarios, 14)
	assert.NotContains(t, resp.Horarios, "09:00")
	assert.NotContains(t, resp.Horarios, "14:30")
	assert.Contains(t, resp.Horarios, "09:30")
}

func TestExecute_DiaCompleto(t *testing.T) {
	turnos := new(MockTurnoRepository)
	uc := newTestUseCase(turnos)

	ocupadas := domain.DefaultAgenda().Slots()
	turnos.On("ListHorasOcupadas", mock.Anything, sabado, mock.Anything).
		Return(ocupadas, nil)

	resp, err := uc.Execute(context.Background(), &Request{Fecha: sabado})

	// Día lleno no es error, la lista viene vacía
	require.NoError(t, err)
	assert.Empty(t, resp.Horarios)
}

func TestExecute_FechasRechazadas(t *testing.T) {
	turnos := new(MockTurnoRepository)
	uc := newTestUseCase(turnos)

	_, err := uc.Execute(context.Background(), &Request{Fecha: time.Date(2025, 11, 19, 0, 0, 0, 0, time.UTC)})
	assert.ErrorIs(t, err, ErrFechaPasada)

	_, err = uc.Execute(context.Background(), &Request{Fecha: time.Date(2025, 11, 23, 0, 0, 0, 0, time.UTC)})
	assert.ErrorIs(t, err, ErrDiaCerrado)

	_, err = uc.Execute(context.Background(), &Request{})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_ErrorDeRepositorio(t *testing.T) {
	turnos := new(MockTurnoRepository)
	uc := newTestUseCase(turnos)

	turnos.On("ListHorasOcupadas", mock.Anything, sabado, mock.Anything).
		Return(nil, errors.New("db down"))

	_, err := uc.Execute(context.Background(), &Request{Fecha: sabado})
	assert.ErrorIs(t, err, ErrInternal)
}
