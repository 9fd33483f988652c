package update_turno

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/falvarezg/turnos-service/internal/domain"
	turnoRepo "github.com/falvarezg/turnos-service/internal/infra/storage/turno"
	"github.com/falvarezg/turnos-service/pkg/ptr"
	"github.com/falvarezg/turnos-service/pkg/types"
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

func (m *MockTurnoRepository) GetByFechaHora(ctx context.Context, fecha time.Time, hora types.TimeString, estados []domain.EstadoTurno, excludeID *int64) (*domain.Turno, error) {
	args := m.Called(ctx, fecha, hora, estados, excludeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Turno), args.Error(1)
}

func (m *MockTurnoRepository) Update(ctx context.Context, id int64, turno *domain.Turno) (*domain.Turno, error) {
	args := m.Called(ctx, id, turno)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Turno), args.Error(1)
}

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

var (
	sabado    = time.Date(2025, 11, 22, 0, 0, 0, 0, time.UTC)
	miercoles = time.Date(2025, 11, 26, 0, 0, 0, 0, time.UTC)
)

func newTestUseCase(turnos *MockTurnoRepository) *UseCase {
	uc := NewUseCase(
		turnos,
		fakeTxManager{},
		domain.DefaultAgenda(),
		domain.DefaultEstadoSet(),
		noopLogger{},
	)
	uc.timeProvider = fixedTimeProvider{now: time.Date(2025, 11, 20, 10, 0, 0, 0, time.UTC)}
	return uc
}

func pendiente() *domain.Turno {
	return &domain.Turno{
		ID:        10,
		PersonaID: 1,
		Fecha:     sabado,
		Hora:      "09:00",
		Estado:    domain.EstadoPendiente,
	}
}

func TestExecute_ReprogramaFechaYHora(t *testing.T) {
	turnos := new(MockTurnoRepository)
	uc := newTestUseCase(turnos)

	turnos.On("GetByID", mock.Anything, int64(10)).Return(pendiente(), nil)
	turnos.On("GetByFechaHora", mock.Anything, miercoles, types.TimeString("14:30"),
		domain.DefaultEstadoSet().Bloqueantes(), ptr.Ptr(int64(10))).
		Return(nil, turnoRepo.ErrTurnoNotFound)
	turnos.On("Update", mock.Anything, int64(10), mock.MatchedBy(func(tr *domain.Turno) bool {
		return tr.Fecha.Equal(miercoles) && tr.Hora == "14:30" && tr.Estado == domain.EstadoPendiente
	})).Return(&domain.Turno{
		ID: 10, PersonaID: 1, Fecha: miercoles, Hora: "14:30", Estado: domain.EstadoPendiente,
	}, nil)

	resp, err := uc.Execute(context.Background(), &Request{
		TurnoID: 10,
		Fecha:   &miercoles,
		Hora:    ptr.Ptr(types.TimeString("14:30")),
	})

	require.NoError(t, err)
	assert.Equal(t, types.TimeString("14:30"), resp.Hora)
	assert.Equal(t, miercoles, resp.Fecha)
	turnos.AssertExpectations(t)
}

func TestExecute_CambiaEstadoNormalizado(t *testing.T) {
	turnos := new(MockTurnoRepository)
	uc := newTestUseCase(turnos)

	turnos.On("GetByID", mock.Anything, int64(10)).Return(pendiente(), nil)
	turnos.On("GetByFechaHora", mock.Anything, sabado, types.TimeString("09:00"),
		mock.Anything, ptr.Ptr(int64(10))).
		Return(nil, turnoRepo.ErrTurnoNotFound)
	turnos.On("Update", mock.Anything, int64(10), mock.MatchedBy(func(tr *domain.Turno) bool {
		return tr.Estado == domain.EstadoConfirmado
	})).Return(&domain.Turno{
		ID: 10, PersonaID: 1, Fecha: sabado, Hora: "09:00", Estado: domain.EstadoConfirmado,
	}, nil)

	// La etiqueta llega en minúsculas y se normaliza al valor canónico
	resp, err := uc.Execute(context.Background(), &Request{
		TurnoID: 10,
		Estado:  ptr.Ptr("confirmado"),
	})

	require.NoError(t, err)
	assert.Equal(t, string(domain.EstadoConfirmado), resp.Estado)
}

func TestExecute_EstadoDesconocido(t *testing.T) {
	turnos := new(MockTurnoRepository)
	uc := newTestUseCase(turnos)

	turnos.On("GetByID", mock.Anything, int64(10)).Return(pendiente(), nil)

	_, err := uc.Execute(context.Background(), &Request{
		TurnoID: 10,
		Estado:  ptr.Ptr("Reservado"),
	})

	assert.ErrorIs(t, err, ErrEstadoInvalido)
	turnos.AssertNotCalled(t, "Update")
}

func TestExecute_TurnoInmutable(t *testing.T) {
	for _, estado := range []domain.EstadoTurno{domain.EstadoCancelado, domain.EstadoAsistido} {
		t.Run(string(estado), func(t *testing.T) {
			turnos := new(MockTurnoRepository)
			uc := newTestUseCase(turnos)

			turno := pendiente()
			turno.Estado = estado
			turnos.On("GetByID", mock.Anything, int64(10)).Return(turno, nil)

			_, err := uc.Execute(context.Background(), &Request{
				TurnoID: 10,
				Hora:    ptr.Ptr(types.TimeString("10:00")),
			})

			assert.ErrorIs(t, err, ErrTransicionInvalida)
			turnos.AssertNotCalled(t, "Update")
		})
	}
}

func TestExecute_SlotDestinoOcupado(t *testing.T) {
	turnos := new(MockTurnoRepository)
	uc := newTestUseCase(turnos)

	turnos.On("GetByID", mock.Anything, int64(10)).Return(pendiente(), nil)
	turnos.On("GetByFechaHora", mock.Anything, sabado, types.TimeString("10:00"),
		mock.Anything, ptr.Ptr(int64(10))).
		Return(&domain.Turno{ID: 20, Estado: domain.EstadoPendiente}, nil)

	_, err := uc.Execute(context.Background(), &Request{
		TurnoID: 10,
		Hora:    ptr.Ptr(types.TimeString("10:00")),
	})

	assert.ErrorIs(t, err, ErrTurnoOcupado)
	turnos.AssertNotCalled(t, "Update")
}

func TestExecute_ValidacionDeDestino(t *testing.T) {
	domingo := time.Date(2025, 11, 23, 0, 0, 0, 0, time.UTC)
	pasada := time.Date(2025, 11, 19, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		req      *Request
		expected error
	}{
		{"hora fuera de ventana", &Request{TurnoID: 10, Hora: ptr.Ptr(types.TimeString("07:00"))}, ErrHoraFueraDeVentana},
		{"hora fuera de grilla", &Request{TurnoID: 10, Hora: ptr.Ptr(types.TimeString("09:10"))}, ErrHoraNoAlineada},
		{"domingo", &Request{TurnoID: 10, Fecha: &domingo}, ErrDiaCerrado},
		{"fecha pasada", &Request{TurnoID: 10, Fecha: &pasada}, ErrFechaPasada},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			turnos := new(MockTurnoRepository)
			uc := newTestUseCase(turnos)
			turnos.On("GetByID", mock.Anything, int64(10)).Return(pendiente(), nil)

			_, err := uc.Execute(context.Background(), tt.req)
			assert.ErrorIs(t, err, tt.expected)
		})
	}
}

func TestExecute_NotFoundEInvalidInput(t *testing.T) {
	turnos := new(MockTurnoRepository)
	uc := newTestUseCase(turnos)

	turnos.On("GetByID", mock.Anything, int64(99)).Return(nil, turnoRepo.ErrTurnoNotFound)

	_, err := uc.Execute(context.Background(), &Request{TurnoID: 99, Hora: ptr.Ptr(types.TimeString("10:00"))})
	assert.ErrorIs(t, err, ErrTurnoNotFound)

	_, err = uc.Execute(context.Background(), &Request{TurnoID: 10})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{TurnoID: 0, Hora: ptr.Ptr(types.TimeString("10:00"))})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
