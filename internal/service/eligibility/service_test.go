package eligibility

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/falvarezg/turnos-service/internal/domain"
)

// Mock структуры

type MockTurnoRepository struct {
	mock.Mock
}

func (m *MockTurnoRepository) CountWithFilter(ctx context.Context, filter domain.TurnoFilter) (int, error) {
	args := m.Called(ctx, filter)
	return args.Int(0), args.Error(1)
}

type MockPersonaRepository struct {
	mock.Mock
}

func (m *MockPersonaRepository) SetHabilitado(ctx context.Context, id int64, habilitado bool) error {
	args := m.Called(ctx, id, habilitado)
	return args.Error(0)
}

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

func newTestService(turnoRepo *MockTurnoRepository, personaRepo *MockPersonaRepository) *Service {
	return NewService(turnoRepo, personaRepo, domain.DefaultEstadoSet(), 5, 180, noopLogger{})
}

func TestEvaluate_PocasCancelaciones(t *testing.T) {
	turnoRepo := new(MockTurnoRepository)
	personaRepo := new(MockPersonaRepository)
	svc := newTestService(turnoRepo, personaRepo)

	persona := &domain.Persona{ID: 1, Habilitado: true}
	hoy := time.Date(2025, 11, 22, 10, 0, 0, 0, time.UTC)

	turnoRepo.On("CountWithFilter", mock.Anything, mock.MatchedBy(func(f domain.TurnoFilter) bool {
		desde := time.Date(2025, 11, 22, 0, 0, 0, 0, time.UTC).AddDate(0, 0, -180)
		return f.PersonaID != nil && *f.PersonaID == 1 &&
			f.Estado != nil && *f.Estado == domain.EstadoCancelado &&
			f.Desde != nil && f.Desde.Equal(desde)
	})).Return(4, nil)

	eval, err := svc.Evaluate(context.Background(), persona, hoy)

	require.NoError(t, err)
	assert.True(t, eval.Habilitado)
	assert.Equal(t, 4, eval.CancelacionesRecientes)
	assert.True(t, persona.Habilitado)
	personaRepo.AssertNotCalled(t, "SetHabilitado")
}

func TestEvaluate_UmbralAlcanzado_Deshabilita(t *testing.T) {
	turnoRepo := new(MockTurnoRepository)
	personaRepo := new(MockPersonaRepository)
	svc := newTestService(turnoRepo, personaRepo)

	persona := &domain.Persona{ID: 7, Habilitado: true}
	hoy := time.Date(2025, 11, 22, 10, 0, 0, 0, time.UTC)

	turnoRepo.On("CountWithFilter", mock.Anything, mock.Anything).Return(5, nil)
	personaRepo.On("SetHabilitado", mock.Anything, int64(7), false).Return(nil)

	eval, err := svc.Evaluate(context.Background(), persona, hoy)

	require.NoError(t, err)
	assert.False(t, eval.Habilitado)
	assert.Equal(t, 5, eval.CancelacionesRecientes)
	assert.False(t, persona.Habilitado)
	personaRepo.AssertExpectations(t)
}

func TestEvaluate_Rehabilita(t *testing.T) {
	turnoRepo := new(MockTurnoRepository)
	personaRepo := new(MockPersonaRepository)
	svc := newTestService(turnoRepo, personaRepo)

	// Cancelaciones viejas salieron de la ventana de 180 días
	persona := &domain.Persona{ID: 7, Habilitado: false}
	hoy := time.Date(2025, 11, 22, 10, 0, 0, 0, time.UTC)

	turnoRepo.On("CountWithFilter", mock.Anything, mock.Anything).Return(2, nil)
	personaRepo.On("SetHabilitado", mock.Anything, int64(7), true).Return(nil)

	eval, err := svc.Evaluate(context.Background(), persona, hoy)

	require.NoError(t, err)
	assert.True(t, eval.Habilitado)
	assert.True(t, persona.Habilitado)
	personaRepo.AssertExpectations(t)
}

func TestEvaluate_ErrorDeRepositorio(t *testing.T) {
	turnoRepo := new(MockTurnoRepository)
	personaRepo := new(MockPersonaRepository)
	svc := newTestService(turnoRepo, personaRepo)

	persona := &domain.Persona{ID: 1, Habilitado: true}
	turnoRepo.On("CountWithFilter", mock.Anything, mock.Anything).Return(0, errors.New("db down"))

	_, err := svc.Evaluate(context.Background(), persona, time.Now())
	assert.ErrorIs(t, err, ErrInternal)
}
