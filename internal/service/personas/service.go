package personas

import (
	"context"
	"errors"
	"fmt"

	"github.com/falvarezg/turnos-service/internal/domain"
	personaRepo "github.com/falvarezg/turnos-service/internal/infra/storage/persona"
	"github.com/falvarezg/turnos-service/internal/service/personas/models"
)

// Service сервис для работы с персонами
type Service struct {
	personaRepo  PersonaRepository
	turnoRepo    TurnoRepository
	txManager    TransactionManager
	estados      domain.EstadoSet
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса персон
func NewService(
	personaRepo PersonaRepository,
	turnoRepo TurnoRepository,
	txManager TransactionManager,
	estados domain.EstadoSet,
	logger Logger,
) *Service {
	return &Service{
		personaRepo:  personaRepo,
		turnoRepo:    turnoRepo,
		txManager:    txManager,
		estados:      estados,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// mapRepoError переводит ошибки репозитория в ошибки сервиса
func mapRepoError(err error) error {
	switch {
	case errors.Is(err, personaRepo.ErrPersonaNotFound):
		return ErrPersonaNotFound
	case errors.Is(err, personaRepo.ErrEmailDuplicado):
		return ErrEmailDuplicado
	case errors.Is(err, personaRepo.ErrDNIDuplicado):
		return ErrDNIDuplicado
	default:
		return nil
	}
}

// Create регистрирует новую персону
func (s *Service) Create(ctx context.Context, req *models.CreatePersonaRequest) (*models.PersonaResponse, error) {
	s.logger.Info("Create: registering persona dni=%s", req.DNI)

	hoy := s.timeProvider.Now()

	nombre, err := normalizeNombre(req.Nombre)
	if err != nil {
		s.logger.Warn("Create: invalid nombre: %v", err)
		return nil, err
	}
	email, err := normalizeEmail(req.Email)
	if err != nil {
		s.logger.Warn("Create: invalid email: %v", err)
		return nil, err
	}
	dni, err := validateDNI(req.DNI)
	if err != nil {
		s.logger.Warn("Create: invalid dni: %v", err)
		return nil, err
	}
	telefono := ""
	if req.Telefono != nil {
		telefono, err = normalizeTelefono(*req.Telefono)
		if err != nil {
			s.logger.Warn("Create: invalid telefono: %v", err)
			return nil, err
		}
	}
	fechaNacimiento, err := parseFechaNacimiento(req.FechaNacimiento, hoy)
	if err != nil {
		s.logger.Warn("Create: invalid fecha_nacimiento: %v", err)
		return nil, err
	}

	persona := &domain.Persona{
		Nombre:          nombre,
		Email:           email,
		DNI:             dni,
		Telefono:        telefono,
		FechaNacimiento: fechaNacimiento,
		Habilitado:      true,
	}

	created, err := s.personaRepo.Create(ctx, persona)
	if err != nil {
		if mapped := mapRepoError(err); mapped != nil {
			s.logger.Warn("Create: duplicate for dni=%s: %v", dni, mapped)
			return nil, mapped
		}
		s.logger.Error("Create: repository error for dni=%s: %v", dni, err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully registered persona id=%d", created.ID)
	return models.FromDomainPersona(created, hoy), nil
}

// GetByID получает персону по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.PersonaResponse, error) {
	persona, err := s.personaRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, personaRepo.ErrPersonaNotFound) {
			s.logger.Warn("GetByID: persona id=%d not found", id)
			return nil, ErrPersonaNotFound
		}
		s.logger.Error("GetByID: repository error for persona id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainPersona(persona, s.timeProvider.Now()), nil
}

// GetByDNI получает персону по DNI
func (s *Service) GetByDNI(ctx context.Context, dni string) (*models.PersonaResponse, error) {
	dni, err := validateDNI(dni)
	if err != nil {
		return nil, err
	}

	persona, err := s.personaRepo.GetByDNI(ctx, dni)
	if err != nil {
		if errors.Is(err, personaRepo.ErrPersonaNotFound) {
			s.logger.Warn("GetByDNI: persona dni=%s not found", dni)
			return nil, ErrPersonaNotFound
		}
		s.logger.Error("GetByDNI: repository error for dni=%s: %v", dni, err)
		return nil, fmt.Errorf("%w: GetByDNI - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainPersona(persona, s.timeProvider.Now()), nil
}

// List получает персоны с offset/limit пагинацией
func (s *Service) List(ctx context.Context, skip, limit int) (*models.PersonaListResponse, error) {
	if skip < 0 || limit < 1 {
		return nil, fmt.Errorf("%w: skip must be >= 0 and limit positive", ErrInvalidInput)
	}

	personas, err := s.personaRepo.List(ctx, skip, limit)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainPersonaList(personas, s.timeProvider.Now()), nil
}

// ListByEstado получает персоны по флагу habilitado
func (s *Service) ListByEstado(ctx context.Context, habilitado bool) (*models.PersonaListResponse, error) {
	personas, err := s.personaRepo.ListByHabilitado(ctx, habilitado)
	if err != nil {
		s.logger.Error("ListByEstado: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListByEstado - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainPersonaList(personas, s.timeProvider.Now()), nil
}

// Buscar ищет персоны по фильтрам с сортировкой и пагинацией
func (s *Service) Buscar(ctx context.Context, req *models.BuscarPersonasRequest) (*models.PersonaPageResponse, error) {
	s.logger.Info("Buscar: searching personas page=%d per_page=%d", req.Page, req.PerPage)

	if req.Page < 1 || req.PerPage < 1 {
		return nil, fmt.Errorf("%w: page and per_page must be positive", ErrInvalidInput)
	}
	if err := validateEdadRange(req.EdadMin, req.EdadMax); err != nil {
		s.logger.Warn("Buscar: invalid edad range: %v", err)
		return nil, err
	}
	orderBy, order, err := validateOrdering(req.OrderBy, req.Order)
	if err != nil {
		s.logger.Warn("Buscar: invalid ordering: %v", err)
		return nil, err
	}

	filter := domain.PersonaFilter{
		Nombre:  req.Nombre,
		Email:   req.Email,
		EdadMin: req.EdadMin,
		EdadMax: req.EdadMax,
		OrderBy: orderBy,
		Order:   order,
	}

	hoy := s.timeProvider.Now()

	total, err := s.personaRepo.CountFiltered(ctx, filter, hoy)
	if err != nil {
		s.logger.Error("Buscar: count error: %v", err)
		return nil, fmt.Errorf("%w: Buscar - count error: %v", ErrInternal, err)
	}

	personas, err := s.personaRepo.ListFiltered(ctx, filter, hoy, (req.Page-1)*req.PerPage, req.PerPage)
	if err != nil {
		s.logger.Error("Buscar: repository error: %v", err)
		return nil, fmt.Errorf("%w: Buscar - repository error: %v", ErrInternal, err)
	}

	list := models.FromDomainPersonaList(personas, hoy)
	return &models.PersonaPageResponse{
		Personas:   list.Personas,
		Pagination: models.NewPaginationMetadata(total, req.Page, req.PerPage),
	}, nil
}

// Update заменяет запись персоны целиком. Все поля, кроме телефона,
// обязательны; отсутствующее поле отклоняется валидацией.
func (s *Service) Update(ctx context.Context, id int64, req *models.UpdatePersonaRequest) (*models.PersonaResponse, error) {
	s.logger.Info("Update: updating persona id=%d", id)

	hoy := s.timeProvider.Now()

	nombre, err := normalizeNombre(req.Nombre)
	if err != nil {
		s.logger.Warn("Update: invalid nombre: %v", err)
		return nil, err
	}
	email, err := normalizeEmail(req.Email)
	if err != nil {
		s.logger.Warn("Update: invalid email: %v", err)
		return nil, err
	}
	dni, err := validateDNI(req.DNI)
	if err != nil {
		s.logger.Warn("Update: invalid dni: %v", err)
		return nil, err
	}
	telefono := ""
	if req.Telefono != nil {
		telefono, err = normalizeTelefono(*req.Telefono)
		if err != nil {
			s.logger.Warn("Update: invalid telefono: %v", err)
			return nil, err
		}
	}
	fechaNacimiento, err := parseFechaNacimiento(req.FechaNacimiento, hoy)
	if err != nil {
		s.logger.Warn("Update: invalid fecha_nacimiento: %v", err)
		return nil, err
	}

	var result *domain.Persona
	err = s.txManager.Do(ctx, func(txCtx context.Context) error {
		persona, err := s.personaRepo.GetByID(txCtx, id)
		if err != nil {
			if errors.Is(err, personaRepo.ErrPersonaNotFound) {
				return ErrPersonaNotFound
			}
			return fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
		}

		persona.Nombre = nombre
		persona.Email = email
		persona.DNI = dni
		persona.Telefono = telefono
		persona.FechaNacimiento = fechaNacimiento

		updated, err := s.personaRepo.Update(txCtx, id, persona)
		if err != nil {
			if mapped := mapRepoError(err); mapped != nil {
				return mapped
			}
			return fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
		}

		result = updated
		return nil
	})

	if err != nil {
		s.logger.Warn("Update: failed for persona id=%d: %v", id, err)
		return nil, err
	}

	s.logger.Info("Update: successfully updated persona id=%d", id)
	return models.FromDomainPersona(result, hoy), nil
}

// Delete удаляет персону. Запрещено, пока у персоны есть турны в состояниях
// Pendiente, Confirmado или Asistido. История отмененных турнов удаляется
// в той же транзакции.
func (s *Service) Delete(ctx context.Context, id int64) error {
	s.logger.Info("Delete: deleting persona id=%d", id)

	err := s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		if _, err := s.personaRepo.GetByID(txCtx, id); err != nil {
			if errors.Is(err, personaRepo.ErrPersonaNotFound) {
				return ErrPersonaNotFound
			}
			return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
		}

		activos, err := s.turnoRepo.CountWithFilter(txCtx, domain.TurnoFilter{
			PersonaID: &id,
			Estados:   s.estados.Bloqueantes(),
		})
		if err != nil {
			return fmt.Errorf("%w: Delete - count turnos: %v", ErrInternal, err)
		}
		if activos > 0 {
			s.logger.Warn("Delete: persona id=%d has %d active turnos", id, activos)
			return ErrPersonaConTurnos
		}

		borrados, err := s.turnoRepo.DeleteByPersonaEstado(txCtx, id, s.estados.Cancelado)
		if err != nil {
			return fmt.Errorf("%w: Delete - delete cancelled turnos: %v", ErrInternal, err)
		}
		if borrados > 0 {
			s.logger.Info("Delete: removed %d cancelled turnos of persona id=%d", borrados, id)
		}

		if err := s.personaRepo.Delete(txCtx, id); err != nil {
			if errors.Is(err, personaRepo.ErrPersonaNotFound) {
				return ErrPersonaNotFound
			}
			return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
		}

		return nil
	})

	if err != nil {
		return err
	}

	s.logger.Info("Delete: successfully deleted persona id=%d", id)
	return nil
}
