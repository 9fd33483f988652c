package create_turno

import (
	"context"
	"errors"
	"fmt"

	"github.com/falvarezg/turnos-service/internal/domain"
	personaRepo "github.com/falvarezg/turnos-service/internal/infra/storage/persona"
	turnoRepo "github.com/falvarezg/turnos-service/internal/infra/storage/turno"
)

// UseCase use case для создания турно
type UseCase struct {
	turnoRepo    TurnoRepository
	personaRepo  PersonaRepository
	eligibility  EligibilityService
	txManager    TransactionManager
	agenda       domain.Agenda
	estados      domain.EstadoSet
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	turnoRepo TurnoRepository,
	personaRepo PersonaRepository,
	eligibility EligibilityService,
	txManager TransactionManager,
	agenda domain.Agenda,
	estados domain.EstadoSet,
	logger Logger,
) *UseCase {
	return &UseCase{
		turnoRepo:    turnoRepo,
		personaRepo:  personaRepo,
		eligibility:  eligibility,
		txManager:    txManager,
		agenda:       agenda,
		estados:      estados,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case создания турно
// Использует сериализуемую транзакцию для предотвращения гонки за слот
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateTurno: persona=%d, fecha=%s, hora=%s",
		req.PersonaID, req.Fecha.Format(domain.DateFormat), req.Hora)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateTurno: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()
	fecha := domain.SoloFecha(req.Fecha)

	var result *domain.Turno
	var persona *domain.Persona

	// 3. Выполняем операции с БД в сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 3.1. Персона должна существовать
		p, err := uc.personaRepo.GetByID(txCtx, req.PersonaID)
		if err != nil {
			if errors.Is(err, personaRepo.ErrPersonaNotFound) {
				uc.logger.Warn("CreateTurno: persona id=%d not found", req.PersonaID)
				return ErrPersonaNotFound
			}
			uc.logger.Error("CreateTurno: failed to get persona id=%d: %v", req.PersonaID, err)
			return fmt.Errorf("%w: failed to get persona: %v", ErrInternal, err)
		}
		persona = p

		// 3.2. Пересчитываем элегибилидад по скользящему окну отмен
		eval, err := uc.eligibility.Evaluate(txCtx, persona, now)
		if err != nil {
			uc.logger.Error("CreateTurno: eligibility evaluation failed for persona id=%d: %v", req.PersonaID, err)
			return fmt.Errorf("%w: eligibility evaluation failed: %v", ErrInternal, err)
		}
		if !eval.Habilitado {
			uc.logger.Warn("CreateTurno: persona id=%d inhabilitada, %d recent cancellations",
				req.PersonaID, eval.CancelacionesRecientes)
			return ErrPersonaInhabilitada
		}

		// 3.3. Валидация часа: окно и сетка слотов
		if err := validateHora(uc.agenda, req.Hora); err != nil {
			uc.logger.Warn("CreateTurno: hora validation failed: %v", err)
			return err
		}

		// 3.4. Валидация даты: не в прошлом, не воскресенье
		if err := validateFecha(fecha, now); err != nil {
			uc.logger.Warn("CreateTurno: fecha validation failed: %v", err)
			return err
		}

		// 3.5. Проверяем конфликт слота с блокировкой строки (FOR UPDATE).
		// Блокируют все состояния кроме Cancelado.
		_, err = uc.turnoRepo.GetByFechaHora(txCtx, fecha, req.Hora, uc.estados.Bloqueantes(), nil)
		if err == nil {
			uc.logger.Warn("CreateTurno: slot %s %s already taken",
				fecha.Format(domain.DateFormat), req.Hora)
			return ErrTurnoOcupado
		}
		if !errors.Is(err, turnoRepo.ErrTurnoNotFound) {
			uc.logger.Error("CreateTurno: conflict check failed: %v", err)
			return fmt.Errorf("%w: conflict check failed: %v", ErrInternal, err)
		}

		// 3.6. Создаем турно; состояние всегда Pendiente независимо от запроса
		turno := &domain.Turno{
			PersonaID: req.PersonaID,
			Fecha:     fecha,
			Hora:      req.Hora,
			Estado:    uc.estados.Pendiente,
		}

		created, err := uc.turnoRepo.Create(txCtx, turno)
		if err != nil {
			uc.logger.Error("CreateTurno: failed to create turno: %v", err)
			return fmt.Errorf("%w: failed to create turno: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateTurno: successfully created turno id=%d", result.ID)

	edad, err := domain.Edad(persona.FechaNacimiento, now)
	if err != nil {
		edad = 0
	}

	return &Response{
		ID:            result.ID,
		PersonaID:     result.PersonaID,
		Fecha:         result.Fecha,
		Hora:          result.Hora,
		Estado:        string(result.Estado),
		PersonaNombre: persona.Nombre,
		PersonaDNI:    persona.DNI,
		PersonaEmail:  persona.Email,
		PersonaEdad:   edad,
		CreatedAt:     result.CreatedAt,
		UpdatedAt:     result.UpdatedAt,
	}, nil
}
