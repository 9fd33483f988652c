package reports

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/falvarezg/turnos-service/internal/domain"
	personaRepo "github.com/falvarezg/turnos-service/internal/infra/storage/persona"
	"github.com/falvarezg/turnos-service/internal/service/reports/models"
)

// Service сервис отчетов. Все отчеты только читают.
type Service struct {
	turnoRepo    TurnoRepository
	personaRepo  PersonaRepository
	estados      domain.EstadoSet
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса отчетов
func NewService(
	turnoRepo TurnoRepository,
	personaRepo PersonaRepository,
	estados domain.EstadoSet,
	logger Logger,
) *Service {
	return &Service{
		turnoRepo:    turnoRepo,
		personaRepo:  personaRepo,
		estados:      estados,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// PorDNI отчет: все турны персоны с указанным DNI.
// Персона без турнов дает пустой список, неизвестный DNI - ошибку.
func (s *Service) PorDNI(ctx context.Context, dni string) (*models.PorDNIResponse, error) {
	s.logger.Info("PorDNI: building report for dni=%s", dni)

	persona, err := s.personaRepo.GetByDNI(ctx, dni)
	if err != nil {
		if errors.Is(err, personaRepo.ErrPersonaNotFound) {
			s.logger.Warn("PorDNI: persona dni=%s not found", dni)
			return nil, ErrPersonaNotFound
		}
		s.logger.Error("PorDNI: repository error for dni=%s: %v", dni, err)
		return nil, fmt.Errorf("%w: PorDNI - repository error: %v", ErrInternal, err)
	}

	turnos, err := s.turnoRepo.ListWithFilter(ctx, domain.TurnoFilter{PersonaID: &persona.ID})
	if err != nil {
		s.logger.Error("PorDNI: failed to list turnos for persona=%d: %v", persona.ID, err)
		return nil, fmt.Errorf("%w: PorDNI - list turnos: %v", ErrInternal, err)
	}

	rows := make([]models.TurnoRow, 0, len(turnos))
	for _, t := range turnos {
		rows = append(rows, models.NewTurnoRow(t))
	}

	return &models.PorDNIResponse{
		Persona: models.NewPersonaInfo(persona, s.timeProvider.Now()),
		Turnos:  rows,
		Total:   len(rows),
	}, nil
}

// Cancelaciones отчет: персоны с minCount и более отмененными турнами,
// с полным списком отмен каждой. Порядок групп следует порядку строк
// выборки (fecha, hora).
func (s *Service) Cancelaciones(ctx context.Context, minCount int) (*models.CancelacionesResponse, error) {
	s.logger.Info("Cancelaciones: building report with min_count=%d", minCount)

	if minCount < 1 {
		return nil, fmt.Errorf("%w: min_count must be positive", ErrInvalidInput)
	}

	cancelado := s.estados.Cancelado
	rows, err := s.turnoRepo.ListConPersona(ctx, domain.TurnoFilter{Estado: &cancelado})
	if err != nil {
		s.logger.Error("Cancelaciones: failed to list cancelled turnos: %v", err)
		return nil, fmt.Errorf("%w: Cancelaciones - list turnos: %v", ErrInternal, err)
	}

	hoy := s.timeProvider.Now()
	groups, index := make([]*models.CancelacionesGroup, 0), make(map[int64]*models.CancelacionesGroup)
	for _, tc := range rows {
		group, ok := index[tc.Persona.ID]
		if !ok {
			group = &models.CancelacionesGroup{
				Persona: models.NewPersonaInfo(&tc.Persona, hoy),
				Turnos:  make([]models.TurnoRow, 0),
			}
			index[tc.Persona.ID] = group
			groups = append(groups, group)
		}
		group.Turnos = append(group.Turnos, models.NewTurnoRow(&tc.Turno))
		group.Cantidad++
	}

	filtered := make([]*models.CancelacionesGroup, 0, len(groups))
	for _, group := range groups {
		if group.Cantidad >= minCount {
			filtered = append(filtered, group)
		}
	}

	s.logger.Info("Cancelaciones: %d personas at or above min_count=%d", len(filtered), minCount)
	return &models.CancelacionesResponse{MinCount: minCount, Personas: filtered}, nil
}

// PorFecha отчет: все турны на дату, сгруппированные по персонам
func (s *Service) PorFecha(ctx context.Context, fecha time.Time) (*models.PorFechaResponse, error) {
	s.logger.Info("PorFecha: building report for fecha=%s", fecha.Format(domain.DateFormat))

	if fecha.IsZero() {
		return nil, fmt.Errorf("%w: fecha is required", ErrInvalidInput)
	}

	dia := domain.SoloFecha(fecha)
	rows, err := s.turnoRepo.ListConPersona(ctx, domain.TurnoFilter{Fecha: &dia})
	if err != nil {
		s.logger.Error("PorFecha: failed to list turnos: %v", err)
		return nil, fmt.Errorf("%w: PorFecha - list turnos: %v", ErrInternal, err)
	}

	hoy := s.timeProvider.Now()
	groups, index := make([]*models.PorFechaGroup, 0), make(map[int64]*models.PorFechaGroup)
	for _, tc := range rows {
		group, ok := index[tc.Persona.ID]
		if !ok {
			group = &models.PorFechaGroup{
				Persona: models.NewPersonaInfo(&tc.Persona, hoy),
				Turnos:  make([]models.TurnoRow, 0),
			}
			index[tc.Persona.ID] = group
			groups = append(groups, group)
		}
		group.Turnos = append(group.Turnos, models.NewTurnoRow(&tc.Turno))
	}

	return &models.PorFechaResponse{
		Fecha:    dia.Format(domain.DateFormat),
		Personas: groups,
		Total:    len(rows),
	}, nil
}

// CanceladosMesActual отчет: отмененные турны текущего календарного месяца,
// сгруппированные по персонам, с количеством на персону и общим итогом
func (s *Service) CanceladosMesActual(ctx context.Context) (*models.CanceladosMesResponse, error) {
	hoy := s.timeProvider.Now()
	desde := time.Date(hoy.Year(), hoy.Month(), 1, 0, 0, 0, 0, hoy.Location())
	hasta := desde.AddDate(0, 1, -1)

	s.logger.Info("CanceladosMesActual: building report for %s", desde.Format("2006-01"))

	cancelado := s.estados.Cancelado
	rows, err := s.turnoRepo.ListConPersona(ctx, domain.TurnoFilter{
		Estado: &cancelado,
		Desde:  &desde,
		Hasta:  &hasta,
	})
	if err != nil {
		s.logger.Error("CanceladosMesActual: failed to list turnos: %v", err)
		return nil, fmt.Errorf("%w: CanceladosMesActual - list turnos: %v", ErrInternal, err)
	}

	groups, index := make([]*models.CanceladosMesGroup, 0), make(map[int64]*models.CanceladosMesGroup)
	for _, tc := range rows {
		group, ok := index[tc.Persona.ID]
		if !ok {
			group = &models.CanceladosMesGroup{
				Persona: models.NewPersonaInfo(&tc.Persona, hoy),
				Turnos:  make([]models.TurnoRow, 0),
			}
			index[tc.Persona.ID] = group
			groups = append(groups, group)
		}
		group.Turnos = append(group.Turnos, models.NewTurnoRow(&tc.Turno))
		group.Cantidad++
	}

	return &models.CanceladosMesResponse{
		Mes:      desde.Format("2006-01"),
		Personas: groups,
		Total:    len(rows),
	}, nil
}

// ConfirmadosEnRango отчет: подтвержденные турны с fecha внутри
// [desde, hasta], постранично с метаданными пагинации
func (s *Service) ConfirmadosEnRango(ctx context.Context, desde, hasta time.Time, page, perPage int) (*models.ConfirmadosResponse, error) {
	s.logger.Info("ConfirmadosEnRango: %s to %s, page=%d per_page=%d",
		desde.Format(domain.DateFormat), hasta.Format(domain.DateFormat), page, perPage)

	if desde.IsZero() || hasta.IsZero() {
		return nil, fmt.Errorf("%w: desde and hasta are required", ErrInvalidInput)
	}
	if page < 1 || perPage < 1 {
		return nil, fmt.Errorf("%w: page and per_page must be positive", ErrInvalidInput)
	}

	desdeDia, hastaDia := domain.SoloFecha(desde), domain.SoloFecha(hasta)
	if hastaDia.Before(desdeDia) {
		s.logger.Warn("ConfirmadosEnRango: invalid range %s > %s",
			desdeDia.Format(domain.DateFormat), hastaDia.Format(domain.DateFormat))
		return nil, ErrRangoInvalido
	}

	confirmado := s.estados.Confirmado
	filter := domain.TurnoFilter{
		Estado: &confirmado,
		Desde:  &desdeDia,
		Hasta:  &hastaDia,
	}

	total, err := s.turnoRepo.CountWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("ConfirmadosEnRango: count error: %v", err)
		return nil, fmt.Errorf("%w: ConfirmadosEnRango - count error: %v", ErrInternal, err)
	}

	rows, err := s.turnoRepo.ListConPersonaPaginated(ctx, filter, (page-1)*perPage, perPage)
	if err != nil {
		s.logger.Error("ConfirmadosEnRango: list error: %v", err)
		return nil, fmt.Errorf("%w: ConfirmadosEnRango - list error: %v", ErrInternal, err)
	}

	hoy := s.timeProvider.Now()
	confirmados := make([]*models.ConfirmadoRow, 0, len(rows))
	for _, tc := range rows {
		confirmados = append(confirmados, &models.ConfirmadoRow{
			Turno:   models.NewTurnoRow(&tc.Turno),
			Persona: models.NewPersonaInfo(&tc.Persona, hoy),
		})
	}

	return &models.ConfirmadosResponse{
		Desde:      desdeDia.Format(domain.DateFormat),
		Hasta:      hastaDia.Format(domain.DateFormat),
		Turnos:     confirmados,
		Pagination: models.NewPaginationMetadata(total, page, perPage),
	}, nil
}
