package turnos

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/falvarezg/turnos-service/internal/domain"
	turnoRepo "github.com/falvarezg/turnos-service/internal/infra/storage/turno"
)

// Mock структуры

type MockTurnoRepository struct {
	mock.Mock
}

func (m *MockTurnoRepository) GetByID(ctx context.Context, id int64) (*domain.Turno, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Turno), args.Error(1)
}

func (m *MockTurnoRepository) GetConPersonaByID(ctx context.Context, id int64) (*domain.TurnoConPersona, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TurnoConPersona), args.Error(1)
}

func (m *MockTurnoRepository) ListConPersonaPaginated(ctx context.Context, filter domain.TurnoFilter, offset, limit int) ([]*domain.TurnoConPersona, error) {
	args := m.Called(ctx, filter, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.TurnoConPersona), args.Error(1)
}

func (m *MockTurnoRepository) UpdateEstado(ctx context.Context, id int64, estado domain.EstadoTurno) error {
	args := m.Called(ctx, id, estado)
	return args.Error(0)
}

func (m *MockTurnoRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type fakeTxManager struct{}

func (fakeTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func (fakeTxManager) DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

func newTestService(repo *MockTurnoRepository) *Service {
	return NewService(repo, fakeTxManager{}, domain.DefaultEstadoSet(), noopLogger{})
}

func turnoEn(estado domain.EstadoTurno) *domain.Turno {
	return &domain.Turno{
		ID:        10,
		PersonaID: 1,
		Fecha:     time.Date(2025, 11, 22, 0, 0, 0, 0, time.UTC),
		Hora:      "09:00",
		Estado:    estado,
	}
}

func TestCancel_DesdePendiente(t *testing.T) {
	repo := new(MockTurnoRepository)
	svc := newTestService(repo)

	repo.On("GetByID", mock.Anything, int64(10)).Return(turnoEn(domain.EstadoPendiente), nil)
	repo.On("UpdateEstado", mock.Anything, int64(10), domain.EstadoCancelado).Return(nil)

	resp, err := svc.Cancel(context.Background(), 10)

	require.NoError(t, err)
	assert.Equal(t, string(domain.EstadoCancelado), resp.Estado)
	repo.AssertExpectations(t)
}

func TestConfirm_DesdePendiente(t *testing.T) {
	repo := new(MockTurnoRepository)
	svc := newTestService(repo)

	repo.On("GetByID", mock.Anything, int64(10)).Return(turnoEn(domain.EstadoPendiente), nil)
	repo.On("UpdateEstado", mock.Anything, int64(10), domain.EstadoConfirmado).Return(nil)

	resp, err := svc.Confirm(context.Background(), 10)

	require.NoError(t, err)
	assert.Equal(t, string(domain.EstadoConfirmado), resp.Estado)
}

func TestTransiciones_SoloDesdePendiente(t *testing.T) {
	// Cualquier estado distinto de Pendiente rechaza la transición
	estados := []domain.EstadoTurno{domain.EstadoConfirmado, domain.EstadoCancelado, domain.EstadoAsistido}

	for _, estado := range estados {
		t.Run(string(estado), func(t *testing.T) {
			repo := new(MockTurnoRepository)
			svc := newTestService(repo)
			repo.On("GetByID", mock.Anything, int64(10)).Return(turnoEn(estado), nil)

			_, err := svc.Cancel(context.Background(), 10)
			assert.ErrorIs(t, err, ErrTransicionInvalida)

			_, err = svc.Confirm(context.Background(), 10)
			assert.ErrorIs(t, err, ErrTransicionInvalida)

			repo.AssertNotCalled(t, "UpdateEstado")
		})
	}
}

func TestTransicion_TurnoNotFound(t *testing.T) {
	repo := new(MockTurnoRepository)
	svc := newTestService(repo)

	repo.On("GetByID", mock.Anything, int64(99)).Return(nil, turnoRepo.ErrTurnoNotFound)

	_, err := svc.Cancel(context.Background(), 99)
	assert.ErrorIs(t, err, ErrTurnoNotFound)
}

func TestDelete_Existente(t *testing.T) {
	repo := new(MockTurnoRepository)
	svc := newTestService(repo)

	repo.On("GetByID", mock.Anything, int64(10)).Return(turnoEn(domain.EstadoPendiente), nil)
	repo.On("Delete", mock.Anything, int64(10)).Return(nil)

	resp, err := svc.Delete(context.Background(), 10)

	require.NoError(t, err)
	assert.True(t, resp.Eliminado)
}

func TestDelete_Inexistente(t *testing.T) {
	repo := new(MockTurnoRepository)
	svc := newTestService(repo)

	repo.On("GetByID", mock.Anything, int64(99)).Return(nil, turnoRepo.ErrTurnoNotFound)

	// Borrar algo que no existe no es error
	resp, err := svc.Delete(context.Background(), 99)

	require.NoError(t, err)
	assert.False(t, resp.Eliminado)
	repo.AssertNotCalled(t, "Delete")
}

func TestDelete_AsistidoRechazado(t *testing.T) {
	repo := new(MockTurnoRepository)
	svc := newTestService(repo)

	repo.On("GetByID", mock.Anything, int64(10)).Return(turnoEn(domain.EstadoAsistido), nil)

	_, err := svc.Delete(context.Background(), 10)

	assert.ErrorIs(t, err, ErrTransicionInvalida)
	repo.AssertNotCalled(t, "Delete")
}

func TestList_AgrupaPorPersona(t *testing.T) {
	repo := new(MockTurnoRepository)
	svc := newTestService(repo)

	juan := domain.Persona{ID: 1, Nombre: "Juan Pérez", DNI: "12345678", FechaNacimiento: time.Date(1990, 5, 15, 0, 0, 0, 0, time.UTC)}
	maria := domain.Persona{ID: 2, Nombre: "María García", DNI: "23456789", FechaNacimiento: time.Date(1985, 9, 3, 0, 0, 0, 0, time.UTC)}

	rows := []*domain.TurnoConPersona{
		{Turno: *turnoEn(domain.EstadoPendiente), Persona: juan},
		{Turno: domain.Turno{ID: 11, PersonaID: 2, Hora: "10:00", Estado: domain.EstadoConfirmado}, Persona: maria},
		{Turno: domain.Turno{ID: 12, PersonaID: 1, Hora: "11:00", Estado: domain.EstadoConfirmado}, Persona: juan},
	}

	repo.On("ListConPersonaPaginated", mock.Anything, domain.TurnoFilter{}, 0, 100).Return(rows, nil)

	resp, err := svc.List(context.Background(), 0, 100)

	require.NoError(t, err)
	assert.Equal(t, 3, resp.Total)
	require.Len(t, resp.Personas, 2)
	// El orden sigue la primera aparición de cada persona
	assert.Equal(t, "Juan Pérez", resp.Personas[0].Persona.Nombre)
	assert.Len(t, resp.Personas[0].Turnos, 2)
	assert.Len(t, resp.Personas[1].Turnos, 1)
}

func TestList_ParametrosInvalidos(t *testing.T) {
	svc := newTestService(new(MockTurnoRepository))

	_, err := svc.List(context.Background(), -1, 10)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.List(context.Background(), 0, 0)
	assert.ErrorIs(t, err, ErrInvalidInput)
}
