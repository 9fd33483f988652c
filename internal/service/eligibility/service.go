package eligibility

import (
	"context"
	"fmt"
	"time"

	"github.com/falvarezg/turnos-service/internal/domain"
)

// Evaluation результат пересчета элегибилидад персоны
type Evaluation struct {
	Habilitado             bool
	CancelacionesRecientes int
}

// Service recomputes whether a persona may book, from their recent
// cancellation history. The rule is a trailing window: umbral or more
// cancellations in the last ventana days disables booking, fewer re-enables
// it. Meant to run inside the caller's transaction so the flag and the
// decision that depends on it stay consistent.
type Service struct {
	turnoRepo   TurnoRepository
	personaRepo PersonaRepository
	estados     domain.EstadoSet
	umbral      int
	ventanaDias int
	logger      Logger
}

// NewService создает новый экземпляр сервиса элегибилидад
func NewService(
	turnoRepo TurnoRepository,
	personaRepo PersonaRepository,
	estados domain.EstadoSet,
	umbral int,
	ventanaDias int,
	logger Logger,
) *Service {
	return &Service{
		turnoRepo:   turnoRepo,
		personaRepo: personaRepo,
		estados:     estados,
		umbral:      umbral,
		ventanaDias: ventanaDias,
		logger:      logger,
	}
}

// Evaluate пересчитывает флаг habilitado персоны на момент hoy.
// Обновляет флаг в БД только если он изменился.
func (s *Service) Evaluate(ctx context.Context, persona *domain.Persona, hoy time.Time) (*Evaluation, error) {
	desde := domain.SoloFecha(hoy).AddDate(0, 0, -s.ventanaDias)
	cancelado := s.estados.Cancelado

	count, err := s.turnoRepo.CountWithFilter(ctx, domain.TurnoFilter{
		PersonaID: &persona.ID,
		Estado:    &cancelado,
		Desde:     &desde,
	})
	if err != nil {
		s.logger.Error("Evaluate: failed to count cancellations for persona=%d: %v", persona.ID, err)
		return nil, fmt.Errorf("%w: Evaluate - count cancellations: %v", ErrInternal, err)
	}

	habilitado := count < s.umbral

	if habilitado != persona.Habilitado {
		if err := s.personaRepo.SetHabilitado(ctx, persona.ID, habilitado); err != nil {
			s.logger.Error("Evaluate: failed to set habilitado=%t for persona=%d: %v", habilitado, persona.ID, err)
			return nil, fmt.Errorf("%w: Evaluate - set habilitado: %v", ErrInternal, err)
		}
		s.logger.Info("Evaluate: persona=%d habilitado %t -> %t (%d cancellations in %d days)",
			persona.ID, persona.Habilitado, habilitado, count, s.ventanaDias)
		persona.Habilitado = habilitado
	}

	return &Evaluation{
		Habilitado:             habilitado,
		CancelacionesRecientes: count,
	}, nil
}
