package get_available_slots

import (
	"context"
	"fmt"

	"github.com/falvarezg/turnos-service/internal/domain"
)

// UseCase use case для расчета свободных слотов на дату
type UseCase struct {
	turnoRepo    TurnoRepository
	agenda       domain.Agenda
	estados      domain.EstadoSet
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	turnoRepo TurnoRepository,
	agenda domain.Agenda,
	estados domain.EstadoSet,
	logger Logger,
) *UseCase {
	return &UseCase{
		turnoRepo:    turnoRepo,
		agenda:       agenda,
		estados:      estados,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case: сетка агенды минус занятые часы.
// Занимают слот только Confirmado и Asistido. Пустой список не ошибка.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: fecha=%s", req.Fecha.Format(domain.DateFormat))

	if req.Fecha.IsZero() {
		return nil, fmt.Errorf("%w: fecha is required", ErrInvalidInput)
	}

	now := uc.timeProvider.Now()
	fecha := domain.SoloFecha(req.Fecha)

	if domain.FechaPasada(fecha, now) {
		uc.logger.Warn("GetAvailableSlots: fecha %s is in the past", fecha.Format(domain.DateFormat))
		return nil, ErrFechaPasada
	}
	if domain.EsDomingo(fecha) {
		uc.logger.Warn("GetAvailableSlots: fecha %s is a Sunday", fecha.Format(domain.DateFormat))
		return nil, ErrDiaCerrado
	}

	ocupadas, err := uc.turnoRepo.ListHorasOcupadas(ctx, fecha, uc.estados.Ocupantes())
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to list occupied horas: %v", err)
		return nil, fmt.Errorf("%w: failed to list occupied horas: %v", ErrInternal, err)
	}

	ocupadasSet := make(map[string]struct{}, len(ocupadas))
	for _, hora := range ocupadas {
		ocupadasSet[hora.String()] = struct{}{}
	}

	horarios := make([]string, 0)
	for _, slot := range uc.agenda.Slots() {
		if _, taken := ocupadasSet[slot.String()]; !taken {
			horarios = append(horarios, slot.String())
		}
	}

	uc.logger.Info("GetAvailableSlots: %d of %d slots available on %s",
		len(horarios), len(uc.agenda.Slots()), fecha.Format(domain.DateFormat))

	return &Response{
		Fecha:     fecha.Format(domain.DateFormat),
		Horarios:  horarios,
		Intervalo: uc.agenda.IntervaloMinutos,
	}, nil
}
