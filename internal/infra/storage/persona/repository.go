package persona

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/falvarezg/turnos-service/internal/domain"
	"github.com/falvarezg/turnos-service/pkg/dbmetrics"
	"github.com/falvarezg/turnos-service/pkg/psqlbuilder"
)

const uniqueViolation = "23505"

var personaColumns = []string{
	"id",
	"nombre",
	"email",
	"dni",
	"telefono",
	"fecha_nacimiento",
	"habilitado",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с персонами
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория персон
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// mapUniqueViolation translates a pq unique-constraint error into the
// matching sentinel, based on the violated constraint name.
func mapUniqueViolation(err error) error {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) || pqErr.Code != uniqueViolation {
		return nil
	}
	switch {
	case strings.Contains(pqErr.Constraint, "email"):
		return ErrEmailDuplicado
	case strings.Contains(pqErr.Constraint, "dni"):
		return ErrDNIDuplicado
	default:
		return nil
	}
}

// Create создает новую персону
func (r *Repository) Create(ctx context.Context, p *domain.Persona) (*domain.Persona, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("personas").
		Columns("nombre", "email", "dni", "telefono", "fecha_nacimiento", "habilitado").
		Values(p.Nombre, p.Email, p.DNI, p.Telefono, p.FechaNacimiento, p.Habilitado).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&p.ID, &createdAt, &updatedAt)
	if err != nil {
		if mapped := mapUniqueViolation(err); mapped != nil {
			return nil, mapped
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	p.CreatedAt = createdAt.Time
	p.UpdatedAt = updatedAt.Time

	return p, nil
}

// GetByID получает персону по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Persona, error) {
	return r.getByField(ctx, squirrel.Eq{"id": id}, "GetByID")
}

// GetByDNI получает персону по DNI
func (r *Repository) GetByDNI(ctx context.Context, dni string) (*domain.Persona, error) {
	return r.getByField(ctx, squirrel.Eq{"dni": dni}, "GetByDNI")
}

func (r *Repository) getByField(ctx context.Context, where squirrel.Eq, op string) (*domain.Persona, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(personaColumns...).
		From("personas").
		Where(where).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, op, err)
	}

	var p domain.Persona
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&p.ID,
		&p.Nombre,
		&p.Email,
		&p.DNI,
		&p.Telefono,
		&p.FechaNacimiento,
		&p.Habilitado,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrPersonaNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s - scan persona: %v", ErrScanRow, op, err)
	}

	p.CreatedAt = createdAt.Time
	p.UpdatedAt = updatedAt.Time

	return &p, nil
}

// List получает персоны с простой offset/limit пагинацией
func (r *Repository) List(ctx context.Context, offset, limit int) ([]*domain.Persona, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(personaColumns...).
		From("personas").
		OrderBy("id ASC").
		Offset(uint64(offset)).
		Limit(uint64(limit)).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanPersonas(rows, "List")
}

// ListByHabilitado получает персоны по значению флага habilitado
func (r *Repository) ListByHabilitado(ctx context.Context, habilitado bool) ([]*domain.Persona, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(personaColumns...).
		From("personas").
		Where(squirrel.Eq{"habilitado": habilitado}).
		OrderBy("id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListByHabilitado - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByHabilitado - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanPersonas(rows, "ListByHabilitado")
}

// filteredBuilder applies the PersonaFilter conditions to a select over
// personas. Age filters translate into fecha_nacimiento bounds relative to
// hoy so the filtering happens in SQL, not in memory.
func filteredBuilder(builder squirrel.SelectBuilder, filter domain.PersonaFilter, hoy time.Time) squirrel.SelectBuilder {
	if filter.Nombre != nil {
		builder = builder.Where(squirrel.ILike{"nombre": "%" + *filter.Nombre + "%"})
	}
	if filter.Email != nil {
		builder = builder.Where(squirrel.ILike{"email": "%" + *filter.Email + "%"})
	}
	if filter.EdadMin != nil {
		// Anyone at least N years old was born on or before hoy - N years.
		maxNacimiento := hoy.AddDate(-*filter.EdadMin, 0, 0)
		builder = builder.Where(squirrel.LtOrEq{"fecha_nacimiento": maxNacimiento})
	}
	if filter.EdadMax != nil {
		// Anyone at most N years old was born strictly after hoy - (N+1) years.
		minNacimiento := hoy.AddDate(-*filter.EdadMax-1, 0, 0)
		builder = builder.Where(squirrel.Gt{"fecha_nacimiento": minNacimiento})
	}
	return builder
}

// orderClause maps the filter's order fields to a SQL ORDER BY expression.
// Ordering by edad is ordering by fecha_nacimiento with the direction
// inverted (older birthdate = higher age).
func orderClause(filter domain.PersonaFilter) string {
	column := "id"
	direction := "ASC"
	if strings.EqualFold(filter.Order, "desc") {
		direction = "DESC"
	}

	switch filter.OrderBy {
	case domain.OrderByNombre:
		column = "nombre"
	case domain.OrderByEmail:
		column = "email"
	case domain.OrderByFechaNacimiento:
		column = "fecha_nacimiento"
	case domain.OrderByEdad:
		column = "fecha_nacimiento"
		if direction == "ASC" {
			direction = "DESC"
		} else {
			direction = "ASC"
		}
	}

	return column + " " + direction
}

// ListFiltered получает персоны по фильтру с пагинацией
func (r *Repository) ListFiltered(ctx context.Context, filter domain.PersonaFilter, hoy time.Time, offset, limit int) ([]*domain.Persona, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := filteredBuilder(psqlbuilder.Select(personaColumns...).From("personas"), filter, hoy).
		OrderBy(orderClause(filter)).
		Offset(uint64(offset)).
		Limit(uint64(limit))

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListFiltered - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListFiltered - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanPersonas(rows, "ListFiltered")
}

// CountFiltered считает персоны по фильтру (для пагинации)
func (r *Repository) CountFiltered(ctx context.Context, filter domain.PersonaFilter, hoy time.Time) (int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := filteredBuilder(psqlbuilder.Select("COUNT(*)").From("personas"), filter, hoy).ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: CountFiltered - build count query: %v", ErrBuildQuery, err)
	}

	var total int
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("%w: CountFiltered - scan count: %v", ErrScanRow, err)
	}

	return total, nil
}

// Update обновляет все поля персоны (полная замена)
func (r *Repository) Update(ctx context.Context, id int64, p *domain.Persona) (*domain.Persona, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("personas").
		Set("nombre", p.Nombre).
		Set("email", p.Email).
		Set("dni", p.DNI).
		Set("telefono", p.Telefono).
		Set("fecha_nacimiento", p.FechaNacimiento).
		Set("habilitado", p.Habilitado).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt)

	if err == sql.ErrNoRows {
		return nil, ErrPersonaNotFound
	}
	if err != nil {
		if mapped := mapUniqueViolation(err); mapped != nil {
			return nil, mapped
		}
		return nil, fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	p.ID = id
	p.CreatedAt = createdAt.Time
	p.UpdatedAt = updatedAt.Time

	return p, nil
}

// SetHabilitado переключает флаг habilitado персоны
func (r *Repository) SetHabilitado(ctx context.Context, id int64, habilitado bool) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("personas").
		Set("habilitado", habilitado).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: SetHabilitado - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: SetHabilitado - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: SetHabilitado - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrPersonaNotFound
	}

	return nil
}

// Delete удаляет персону (физическое удаление)
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("personas").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrPersonaNotFound
	}

	return nil
}

// scanPersonas сканирует результаты запроса в слайс персон
func (r *Repository) scanPersonas(rows *sql.Rows, op string) ([]*domain.Persona, error) {
	personas := make([]*domain.Persona, 0)

	for rows.Next() {
		var p domain.Persona
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&p.ID,
			&p.Nombre,
			&p.Email,
			&p.DNI,
			&p.Telefono,
			&p.FechaNacimiento,
			&p.Habilitado,
			&createdAt,
			&updatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: %s - scan row: %v", ErrScanRow, op, err)
		}

		p.CreatedAt = createdAt.Time
		p.UpdatedAt = updatedAt.Time

		personas = append(personas, &p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s - rows error: %v", ErrScanRow, op, err)
	}

	return personas, nil
}
