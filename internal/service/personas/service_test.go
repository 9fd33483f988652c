package personas

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/falvarezg/turnos-service/internal/domain"
	personaRepo "github.com/falvarezg/turnos-service/internal/infra/storage/persona"
	"github.com/falvarezg/turnos-service/internal/service/personas/models"
	"github.com/falvarezg/turnos-service/pkg/ptr"
)

// Mock структуры

type MockPersonaRepository struct {
	mock.Mock
}

func (m *MockPersonaRepository) Create(ctx context.Context, p *domain.Persona) (*domain.Persona, error) {
	args := m.Called(ctx, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Persona), args.Error(1)
}

func (m *MockPersonaRepository) GetByID(ctx context.Context, id int64) (*domain.Persona, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Persona), args.Error(1)
}

func (m *MockPersonaRepository) GetByDNI(ctx context.Context, dni string) (*domain.Persona, error) {
	args := m.Called(ctx, dni)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Persona), args.Error(1)
}

func (m *MockPersonaRepository) List(ctx context.Context, offset, limit int) ([]*domain.Persona, error) {
	args := m.Called(ctx, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Persona), args.Error(1)
}

func (m *MockPersonaRepository) ListByHabilitado(ctx context.Context, habilitado bool) ([]*domain.Persona, error) {
	args := m.Called(ctx, habilitado)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Persona), args.Error(1)
}

func (m *MockPersonaRepository) ListFiltered(ctx context.Context, filter domain.PersonaFilter, hoy time.Time, offset, limit int) ([]*domain.Persona, error) {
	args := m.Called(ctx, filter, hoy, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Persona), args.Error(1)
}

func (m *MockPersonaRepository) CountFiltered(ctx context.Context, filter domain.PersonaFilter, hoy time.Time) (int, error) {
	args := m.Called(ctx, filter, hoy)
	return args.Int(0), args.Error(1)
}

func (m *MockPersonaRepository) Update(ctx context.Context, id int64, p *domain.Persona) (*domain.Persona, error) {
	args := m.Called(ctx, id, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Persona), args.Error(1)
}

func (m *MockPersonaRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockTurnoRepository struct {
	mock.Mock
}

func (m *MockTurnoRepository) CountWithFilter(ctx context.Context, filter domain.TurnoFilter) (int, error) {
	args := m.Called(ctx, filter)
	return args.Int(0), args.Error(1)
}

func (m *MockTurnoRepository) DeleteByPersonaEstado(ctx context.Context, personaID int64, estado domain.EstadoTurno) (int64, error) {
	args := m.Called(ctx, personaID, estado)
	return args.Get(0).(int64), args.Error(1)
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

type fixedTimeProvider struct {
	t time.Time
}

func (f fixedTimeProvider) Now() time.Time {
	return f.t
}

func newTestService(personas *MockPersonaRepository, turnos *MockTurnoRepository) *Service {
	svc := NewService(personas, turnos, fakeTxManager{}, domain.DefaultEstadoSet(), noopLogger{})
	svc.timeProvider = fixedTimeProvider{t: time.Date(2025, 11, 22, 10, 0, 0, 0, time.UTC)}
	return svc
}

func personaGuardada() *domain.Persona {
	return &domain.Persona{
		ID:              1,
		Nombre:          "Juan Pérez",
		Email:           "juan.perez@example.com",
		DNI:             "12345678",
		Telefono:        "+5491122334455",
		FechaNacimiento: time.Date(1990, 5, 15, 0, 0, 0, 0, time.UTC),
		Habilitado:      true,
	}
}

func TestUpdate_ReemplazaTodosLosCampos(t *testing.T) {
	personas := new(MockPersonaRepository)
	turnos := new(MockTurnoRepository)
	svc := newTestService(personas, turnos)

	personas.On("GetByID", mock.Anything, int64(1)).Return(personaGuardada(), nil)
	personas.On("Update", mock.Anything, int64(1), mock.MatchedBy(func(p *domain.Persona) bool {
		return p.Nombre == "Pedro Gómez" &&
			p.Email == "pedro.gomez@example.com" &&
			p.DNI == "87654321" &&
			p.Telefono == "" &&
			p.FechaNacimiento.Equal(time.Date(1992, 3, 1, 0, 0, 0, 0, time.UTC))
	})).Return(&domain.Persona{
		ID:              1,
		Nombre:          "Pedro Gómez",
		Email:           "pedro.gomez@example.com",
		DNI:             "87654321",
		FechaNacimiento: time.Date(1992, 3, 1, 0, 0, 0, 0, time.UTC),
		Habilitado:      true,
	}, nil)

	// Sin telefono en el cuerpo: el valor guardado se reemplaza por vacío,
	// no se conserva
	resp, err := svc.Update(context.Background(), 1, &models.UpdatePersonaRequest{
		Nombre:          "pedro gómez",
		Email:           "Pedro.Gomez@Example.com",
		DNI:             "87654321",
		FechaNacimiento: "1992-03-01",
	})

	require.NoError(t, err)
	assert.Equal(t, "Pedro Gómez", resp.Nombre)
	assert.Equal(t, "pedro.gomez@example.com", resp.Email)
	assert.Equal(t, "87654321", resp.DNI)
	assert.Empty(t, resp.Telefono)
	personas.AssertExpectations(t)
}

func TestUpdate_CuerpoIncompletoRechazado(t *testing.T) {
	tests := []struct {
		name string
		req  models.UpdatePersonaRequest
	}{
		{
			"solo email",
			models.UpdatePersonaRequest{Email: "nuevo@example.com"},
		},
		{
			"sin fecha de nacimiento",
			models.UpdatePersonaRequest{
				Nombre: "Juan Pérez",
				Email:  "juan.perez@example.com",
				DNI:    "12345678",
			},
		},
		{
			"sin dni",
			models.UpdatePersonaRequest{
				Nombre:          "Juan Pérez",
				Email:           "juan.perez@example.com",
				FechaNacimiento: "1990-05-15",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			personas := new(MockPersonaRepository)
			svc := newTestService(personas, new(MockTurnoRepository))

			_, err := svc.Update(context.Background(), 1, &tt.req)

			assert.ErrorIs(t, err, ErrInvalidInput)
			personas.AssertNotCalled(t, "GetByID")
			personas.AssertNotCalled(t, "Update")
		})
	}
}

func TestUpdate_TelefonoOpcional(t *testing.T) {
	personas := new(MockPersonaRepository)
	svc := newTestService(personas, new(MockTurnoRepository))

	personas.On("GetByID", mock.Anything, int64(1)).Return(personaGuardada(), nil)
	personas.On("Update", mock.Anything, int64(1), mock.MatchedBy(func(p *domain.Persona) bool {
		return p.Telefono == "+5491199887766"
	})).Return(personaGuardada(), nil)

	_, err := svc.Update(context.Background(), 1, &models.UpdatePersonaRequest{
		Nombre:          "Juan Pérez",
		Email:           "juan.perez@example.com",
		DNI:             "12345678",
		Telefono:        ptr.Ptr("+54 (911) 9988-7766"),
		FechaNacimiento: "1990-05-15",
	})

	require.NoError(t, err)
	personas.AssertExpectations(t)
}

func TestUpdate_PersonaInexistente(t *testing.T) {
	personas := new(MockPersonaRepository)
	svc := newTestService(personas, new(MockTurnoRepository))

	personas.On("GetByID", mock.Anything, int64(99)).Return(nil, personaRepo.ErrPersonaNotFound)

	_, err := svc.Update(context.Background(), 99, &models.UpdatePersonaRequest{
		Nombre:          "Juan Pérez",
		Email:           "juan.perez@example.com",
		DNI:             "12345678",
		FechaNacimiento: "1990-05-15",
	})

	assert.ErrorIs(t, err, ErrPersonaNotFound)
}
