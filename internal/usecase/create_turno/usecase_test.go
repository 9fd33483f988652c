package create_turno

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/falvarezg/turnos-service/internal/domain"
	personaRepo "github.com/falvarezg/turnos-service/internal/infra/storage/persona"
	turnoRepo "github.com/falvarezg/turnos-service/internal/infra/storage/turno"
	"github.com/falvarezg/turnos-service/internal/service/eligibility"
	"github.com/falvarezg/turnos-service/pkg/types"
)

// Mock структуры

type MockTurnoRepository struct {
	mock.Mock
}

func (m *MockTurnoRepository) Create(ctx context.Context, turno *domain.Turno) (*domain.Turno, error) {
	args := m.Called(ctx, turno)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Turno), args.Error(1)
}

func (m *MockTurnoRepository) GetByFechaHora(ctx context.Context, fecha time.Time, hora types.TimeString, estados []domain.EstadoTurno, excludeID *int64) (*domain.Turno, error) {
	args := m.Called(ctx, fecha, hora, estados, excludeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Turno), args.Error(1)
}

type MockPersonaRepository struct {
	mock.Mock
}

func (m *MockPersonaRepository) GetByID(ctx context.Context, id int64) (*domain.Persona, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Persona), args.Error(1)
}

type MockEligibilityService struct {
	mock.Mock
}

func (m *MockEligibilityService) Evaluate(ctx context.Context, persona *domain.Persona, hoy time.Time) (*eligibility.Evaluation, error) {
	args := m.Called(ctx, persona, hoy)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*eligibility.Evaluation), args.Error(1)
}

// fakeTxManager выполняет функцию без настоящей транзакции
type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fixedTimeProvider struct {
	now time.Time
}

func (p fixedTimeProvider) Now() time.Time { return p.now }

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

// 2025-11-22 - сб, рабочий день
var sabado = time.Date(2025, 11, 22, 0, 0, 0, 0, time.UTC)

func newTestUseCase(turnos *MockTurnoRepository, personas *MockPersonaRepository, elig *MockEligibilityService) *UseCase {
	uc := NewUseCase(
		turnos,
		personas,
		elig,
		fakeTxManager{},
		domain.DefaultAgenda(),
		domain.DefaultEstadoSet(),
		noopLogger{},
	)
	uc.timeProvider = fixedTimeProvider{now: time.Date(2025, 11, 20, 10, 0, 0, 0, time.UTC)}
	return uc
}

func habilitada() *domain.Persona {
	return &domain.Persona{
		ID:              1,
		Nombre:          "Juan Pérez",
		Email:           "juan.perez@example.com",
		DNI:             "12345678",
		FechaNacimiento: time.Date(1990, 5, 15, 0, 0, 0, 0, time.UTC),
		Habilitado:      true,
	}
}

func TestExecute_Success(t *testing.T) {
	turnos := new(MockTurnoRepository)
	personas := new(MockPersonaRepository)
	elig := new(MockEligibilityService)
	uc := newTestUseCase(turnos, personas, elig)

	persona := habilitada()
	personas.On("GetByID", mock.Anything, int64(1)).Return(persona, nil)
	elig.On("Evaluate", mock.Anything, persona, mock.Anything).
		Return(&eligibility.Evaluation{Habilitado: true}, nil)
	turnos.On("GetByFechaHora", mock.Anything, sabado, types.TimeString("09:00"),
		domain.DefaultEstadoSet().Bloqueantes(), (*int64)(nil)).
		Return(nil, turnoRepo.ErrTurnoNotFound)
	turnos.On("Create", mock.Anything, mock.MatchedBy(func(tr *domain.Turno) bool {
		return tr.PersonaID == 1 && tr.Estado == domain.EstadoPendiente && tr.Hora == "09:00"
	})).Return(&domain.Turno{
		ID:        10,
		PersonaID: 1,
		Fecha:     sabado,
		Hora:      "09:00",
		Estado:    domain.EstadoPendiente,
	}, nil)

	resp, err := uc.Execute(context.Background(), &Request{PersonaID: 1, Fecha: sabado, Hora: "09:00"})

	require.NoError(t, err)
	assert.Equal(t, int64(10), resp.ID)
	assert.Equal(t, string(domain.EstadoPendiente), resp.Estado)
	assert.Equal(t, "Juan Pérez", resp.PersonaNombre)
	assert.Equal(t, "12345678", resp.PersonaDNI)
	// Nacido 1990-05-15, evaluado el 2025-11-20
	assert.Equal(t, 35, resp.PersonaEdad)
	turnos.AssertExpectations(t)
}

func TestExecute_PersonaNotFound(t *testing.T) {
	turnos := new(MockTurnoRepository)
	personas := new(MockPersonaRepository)
	elig := new(MockEligibilityService)
	uc := newTestUseCase(turnos, personas, elig)

	personas.On("GetByID", mock.Anything, int64(99)).Return(nil, personaRepo.ErrPersonaNotFound)

	_, err := uc.Execute(context.Background(), &Request{PersonaID: 99, Fecha: sabado, Hora: "09:00"})
	assert.ErrorIs(t, err, ErrPersonaNotFound)
}

func TestExecute_PersonaInhabilitada(t *testing.T) {
	turnos := new(MockTurnoRepository)
	personas := new(MockPersonaRepository)
	elig := new(MockEligibilityService)
	uc := newTestUseCase(turnos, personas, elig)

	persona := habilitada()
	personas.On("GetByID", mock.Anything, int64(1)).Return(persona, nil)
	elig.On("Evaluate", mock.Anything, persona, mock.Anything).
		Return(&eligibility.Evaluation{Habilitado: false, CancelacionesRecientes: 5}, nil)

	_, err := uc.Execute(context.Background(), &Request{PersonaID: 1, Fecha: sabado, Hora: "09:00"})

	assert.ErrorIs(t, err, ErrPersonaInhabilitada)
	turnos.AssertNotCalled(t, "Create")
}

func TestExecute_ValidacionDeHoraYFecha(t *testing.T) {
	tests := []struct {
		name     string
		fecha    time.Time
		hora     types.TimeString
		expected error
	}{
		{"hora antes del inicio", sabado, "08:00", ErrHoraFueraDeVentana},
		{"hora después del fin", sabado, "17:00", ErrHoraFueraDeVentana},
		{"hora fuera de la grilla", sabado, "09:15", ErrHoraNoAlineada},
		{"domingo cerrado", time.Date(2025, 11, 23, 0, 0, 0, 0, time.UTC), "09:00", ErrDiaCerrado},
		{"fecha pasada", time.Date(2025, 11, 19, 0, 0, 0, 0, time.UTC), "09:00", ErrFechaPasada},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			turnos := new(MockTurnoRepository)
			personas := new(MockPersonaRepository)
			elig := new(MockEligibilityService)
			uc := newTestUseCase(turnos, personas, elig)

			persona := habilitada()
			personas.On("GetByID", mock.Anything, int64(1)).Return(persona, nil)
			elig.On("Evaluate", mock.Anything, persona, mock.Anything).
				Return(&eligibility.Evaluation{Habilitado: true}, nil)

			_, err := uc.Execute(context.Background(), &Request{PersonaID: 1, Fecha: tt.fecha, Hora: tt.hora})

			assert.ErrorIs(t, err, tt.expected)
			turnos.AssertNotCalled(t, "Create")
		})
	}
}

func TestExecute_SlotOcupado(t *testing.T) {
	turnos := new(MockTurnoRepository)
	personas := new(MockPersonaRepository)
	elig := new(MockEligibilityService)
	uc := newTestUseCase(turnos, personas, elig)

	persona := habilitada()
	personas.On("GetByID", mock.Anything, int64(1)).Return(persona, nil)
	elig.On("Evaluate", mock.Anything, persona, mock.Anything).
		Return(&eligibility.Evaluation{Habilitado: true}, nil)
	turnos.On("GetByFechaHora", mock.Anything, sabado, types.TimeString("10:00"),
		mock.Anything, (*int64)(nil)).
		Return(&domain.Turno{ID: 5, Estado: domain.EstadoConfirmado}, nil)

	_, err := uc.Execute(context.Background(), &Request{PersonaID: 1, Fecha: sabado, Hora: "10:00"})

	assert.ErrorIs(t, err, ErrTurnoOcupado)
	turnos.AssertNotCalled(t, "Create")
}

func TestExecute_SlotLiberadoPorCancelacion(t *testing.T) {
	// Un turno Cancelado no bloquea: el filtro de estados excluye Cancelado,
	// así que el repositorio responde not found y el slot se puede retomar
	turnos := new(MockTurnoRepository)
	personas := new(MockPersonaRepository)
	elig := new(MockEligibilityService)
	uc := newTestUseCase(turnos, personas, elig)

	persona := habilitada()
	personas.On("GetByID", mock.Anything, int64(1)).Return(persona, nil)
	elig.On("Evaluate", mock.Anything, persona, mock.Anything).
		Return(&eligibility.Evaluation{Habilitado: true}, nil)
	turnos.On("GetByFechaHora", mock.Anything, sabado, types.TimeString("11:00"),
		domain.DefaultEstadoSet().Bloqueantes(), (*int64)(nil)).
		Return(nil, turnoRepo.ErrTurnoNotFound)
	turnos.On("Create", mock.Anything, mock.Anything).Return(&domain.Turno{
		ID:        11,
		PersonaID: 1,
		Fecha:     sabado,
		Hora:      "11:00",
		Estado:    domain.EstadoPendiente,
	}, nil)

	resp, err := uc.Execute(context.Background(), &Request{PersonaID: 1, Fecha: sabado, Hora: "11:00"})

	require.NoError(t, err)
	assert.Equal(t, int64(11), resp.ID)
}

func TestExecute_InvalidInput(t *testing.T) {
	uc := newTestUseCase(new(MockTurnoRepository), new(MockPersonaRepository), new(MockEligibilityService))

	tests := []struct {
		name string
		req  *Request
	}{
		{"persona_id cero", &Request{PersonaID: 0, Fecha: sabado, Hora: "09:00"}},
		{"fecha vacía", &Request{PersonaID: 1, Hora: "09:00"}},
		{"hora vacía", &Request{PersonaID: 1, Fecha: sabado}},
		{"hora mal formada", &Request{PersonaID: 1, Fecha: sabado, Hora: "9am"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), tt.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}
