package update_turno

import (
	"context"
	"errors"
	"fmt"

	"github.com/falvarezg/turnos-service/internal/domain"
	turnoRepo "github.com/falvarezg/turnos-service/internal/infra/storage/turno"
)

// UseCase use case для обновления турно
type UseCase struct {
	turnoRepo    TurnoRepository
	txManager    TransactionManager
	agenda       domain.Agenda
	estados      domain.EstadoSet
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	turnoRepo TurnoRepository,
	txManager TransactionManager,
	agenda domain.Agenda,
	estados domain.EstadoSet,
	logger Logger,
) *UseCase {
	return &UseCase{
		turnoRepo:    turnoRepo,
		txManager:    txManager,
		agenda:       agenda,
		estados:      estados,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case обновления турно.
// Собирает итоговую строку из текущей и переданных полей, полностью ее
// перевалидирует и записывает одним UPDATE. До записи ничего не меняется.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("UpdateTurno: turno id=%d", req.TurnoID)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("UpdateTurno: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	var result *domain.Turno

	// 3. Выполняем операции с БД в сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 3.1. Турно должен существовать
		turno, err := uc.turnoRepo.GetByID(txCtx, req.TurnoID)
		if err != nil {
			if errors.Is(err, turnoRepo.ErrTurnoNotFound) {
				uc.logger.Warn("UpdateTurno: turno id=%d not found", req.TurnoID)
				return ErrTurnoNotFound
			}
			uc.logger.Error("UpdateTurno: failed to get turno id=%d: %v", req.TurnoID, err)
			return fmt.Errorf("%w: failed to get turno: %v", ErrInternal, err)
		}

		// 3.2. Терминальные состояния не редактируются
		if uc.estados.EsInmutable(turno.Estado) {
			uc.logger.Warn("UpdateTurno: turno id=%d has estado=%s, update rejected",
				req.TurnoID, turno.Estado)
			return ErrTransicionInvalida
		}

		// 3.3. Собираем итоговую строку из текущей и переданных полей
		merged := *turno
		if req.Fecha != nil {
			merged.Fecha = domain.SoloFecha(*req.Fecha)
		}
		if req.Hora != nil {
			merged.Hora = *req.Hora
		}
		if req.Estado != nil {
			estado, err := uc.estados.Normalize(*req.Estado)
			if err != nil {
				uc.logger.Warn("UpdateTurno: unknown estado %q for turno id=%d", *req.Estado, req.TurnoID)
				return fmt.Errorf("%w: %v", ErrEstadoInvalido, err)
			}
			merged.Estado = estado
		}

		// 3.4. Полная перевалидация даты и часа
		if err := validateHora(uc.agenda, merged.Hora); err != nil {
			uc.logger.Warn("UpdateTurno: hora validation failed: %v", err)
			return err
		}
		if err := validateFecha(merged.Fecha, now); err != nil {
			uc.logger.Warn("UpdateTurno: fecha validation failed: %v", err)
			return err
		}

		// 3.5. Проверяем конфликт слота, исключая собственную строку
		_, err = uc.turnoRepo.GetByFechaHora(txCtx, merged.Fecha, merged.Hora,
			uc.estados.Bloqueantes(), &req.TurnoID)
		if err == nil {
			uc.logger.Warn("UpdateTurno: slot %s %s already taken",
				merged.Fecha.Format(domain.DateFormat), merged.Hora)
			return ErrTurnoOcupado
		}
		if !errors.Is(err, turnoRepo.ErrTurnoNotFound) {
			uc.logger.Error("UpdateTurno: conflict check failed: %v", err)
			return fmt.Errorf("%w: conflict check failed: %v", ErrInternal, err)
		}

		// 3.6. Записываем строку целиком
		updated, err := uc.turnoRepo.Update(txCtx, req.TurnoID, &merged)
		if err != nil {
			if errors.Is(err, turnoRepo.ErrTurnoNotFound) {
				return ErrTurnoNotFound
			}
			uc.logger.Error("UpdateTurno: failed to update turno id=%d: %v", req.TurnoID, err)
			return fmt.Errorf("%w: failed to update turno: %v", ErrInternal, err)
		}

		result = updated
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("UpdateTurno: successfully updated turno id=%d", result.ID)

	return &Response{
		ID:        result.ID,
		PersonaID: result.PersonaID,
		Fecha:     result.Fecha,
		Hora:      result.Hora,
		Estado:    string(result.Estado),
		CreatedAt: result.CreatedAt,
		UpdatedAt: result.UpdatedAt,
	}, nil
}
