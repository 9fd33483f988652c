package turnos

import (
	"context"
	"errors"
	"fmt"

	"github.com/falvarezg/turnos-service/internal/domain"
	turnoRepo "github.com/falvarezg/turnos-service/internal/infra/storage/turno"
	"github.com/falvarezg/turnos-service/internal/service/turnos/models"
)

// Service сервис для чтения и переходов состояний турнов
type Service struct {
	turnoRepo    TurnoRepository
	txManager    TransactionManager
	estados      domain.EstadoSet
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса турнов
func NewService(
	turnoRepo TurnoRepository,
	txManager TransactionManager,
	estados domain.EstadoSet,
	logger Logger,
) *Service {
	return &Service{
		turnoRepo:    turnoRepo,
		txManager:    txManager,
		estados:      estados,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// GetByID получает турно по ID вместе с данными персоны
func (s *Service) GetByID(ctx context.Context, id int64) (*models.TurnoResponse, error) {
	tc, err := s.turnoRepo.GetConPersonaByID(ctx, id)
	if err != nil {
		if errors.Is(err, turnoRepo.ErrTurnoNotFound) {
			s.logger.Warn("GetByID: turno id=%d not found", id)
			return nil, ErrTurnoNotFound
		}
		s.logger.Error("GetByID: repository error for turno id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainTurnoConPersona(tc, s.timeProvider.Now()), nil
}

// List получает турны, сгруппированные по персонам, с offset/limit пагинацией
func (s *Service) List(ctx context.Context, skip, limit int) (*models.TurnoListResponse, error) {
	if skip < 0 || limit < 1 {
		return nil, fmt.Errorf("%w: skip must be >= 0 and limit positive", ErrInvalidInput)
	}

	rows, err := s.turnoRepo.ListConPersonaPaginated(ctx, domain.TurnoFilter{}, skip, limit)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	return models.GroupByPersona(rows, s.timeProvider.Now()), nil
}

// Cancel отменяет турно. Допустимо только из состояния Pendiente.
func (s *Service) Cancel(ctx context.Context, id int64) (*models.TurnoResponse, error) {
	return s.transition(ctx, id, s.estados.Cancelado, "Cancel")
}

// Confirm подтверждает турно. Допустимо только из состояния Pendiente.
func (s *Service) Confirm(ctx context.Context, id int64) (*models.TurnoResponse, error) {
	return s.transition(ctx, id, s.estados.Confirmado, "Confirm")
}

func (s *Service) transition(ctx context.Context, id int64, destino domain.EstadoTurno, op string) (*models.TurnoResponse, error) {
	s.logger.Info("%s: turno id=%d -> %s", op, id, destino)

	var result *domain.Turno
	err := s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		turno, err := s.turnoRepo.GetByID(txCtx, id)
		if err != nil {
			if errors.Is(err, turnoRepo.ErrTurnoNotFound) {
				return ErrTurnoNotFound
			}
			return fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
		}

		if !s.estados.EsPendiente(turno.Estado) {
			s.logger.Warn("%s: turno id=%d has estado=%s, transition rejected", op, id, turno.Estado)
			return ErrTransicionInvalida
		}

		if err := s.turnoRepo.UpdateEstado(txCtx, id, destino); err != nil {
			if errors.Is(err, turnoRepo.ErrTurnoNotFound) {
				return ErrTurnoNotFound
			}
			return fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
		}

		turno.Estado = destino
		result = turno
		return nil
	})

	if err != nil {
		return nil, err
	}

	s.logger.Info("%s: turno id=%d now %s", op, id, destino)
	return models.FromDomainTurno(result), nil
}

// Delete удаляет турно. Asistido удалять запрещено; отсутствующий турно
// не является ошибкой и возвращает eliminado=false.
func (s *Service) Delete(ctx context.Context, id int64) (*models.DeleteTurnoResponse, error) {
	s.logger.Info("Delete: turno id=%d", id)

	eliminado := false
	err := s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		turno, err := s.turnoRepo.GetByID(txCtx, id)
		if err != nil {
			if errors.Is(err, turnoRepo.ErrTurnoNotFound) {
				return nil
			}
			return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
		}

		if s.estados.EsAsistido(turno.Estado) {
			s.logger.Warn("Delete: turno id=%d is %s, delete rejected", id, turno.Estado)
			return ErrTransicionInvalida
		}

		if err := s.turnoRepo.Delete(txCtx, id); err != nil {
			if errors.Is(err, turnoRepo.ErrTurnoNotFound) {
				return nil
			}
			return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
		}

		eliminado = true
		return nil
	})

	if err != nil {
		return nil, err
	}

	if eliminado {
		s.logger.Info("Delete: turno id=%d deleted", id)
	} else {
		s.logger.Warn("Delete: turno id=%d not found, nothing deleted", id)
	}

	return &models.DeleteTurnoResponse{Eliminado: eliminado}, nil
}
