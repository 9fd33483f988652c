package turno

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/falvarezg/turnos-service/internal/domain"
	"github.com/falvarezg/turnos-service/pkg/dbmetrics"
	"github.com/falvarezg/turnos-service/pkg/psqlbuilder"
	"github.com/falvarezg/turnos-service/pkg/types"
)

var turnoColumns = []string{
	"id",
	"persona_id",
	"fecha",
	"hora",
	"estado",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с турнами
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория турнов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новый турно
func (r *Repository) Create(ctx context.Context, t *domain.Turno) (*domain.Turno, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("turnos").
		Columns("persona_id", "fecha", "hora", "estado").
		Values(t.PersonaID, t.Fecha, t.Hora, string(t.Estado)).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&t.ID, &createdAt, &updatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	t.CreatedAt = createdAt.Time
	t.UpdatedAt = updatedAt.Time

	return t, nil
}

// GetByID получает турно по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Turno, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(turnoColumns...).
		From("turnos").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	return r.scanTurnoRow(executor.QueryRowContext(ctx, query, args...), "GetByID")
}

// GetByFechaHora ищет турно в указанном слоте с одним из перечисленных
// состояний. Внутри транзакции строки блокируются через FOR UPDATE, чтобы
// проверка конфликта и вставка были атомарны.
func (r *Repository) GetByFechaHora(ctx context.Context, fecha time.Time, hora types.TimeString, estados []domain.EstadoTurno, excludeID *int64) (*domain.Turno, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Select(turnoColumns...).
		From("turnos").
		Where(squirrel.Eq{"fecha": fecha}).
		Where(squirrel.Eq{"hora": hora}).
		Where(squirrel.Eq{"estado": estadoStrings(estados)})

	if excludeID != nil {
		builder = builder.Where(squirrel.NotEq{"id": *excludeID})
	}
	if dbmetrics.IsInTransaction(ctx) {
		builder = builder.Suffix("FOR UPDATE")
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByFechaHora - build select query: %v", ErrBuildQuery, err)
	}

	return r.scanTurnoRow(executor.QueryRowContext(ctx, query, args...), "GetByFechaHora")
}

// filterConditions применяет TurnoFilter к запросу. prefix нужен для
// запросов с JOIN, где колонки требуют алиас таблицы.
func filterConditions(builder squirrel.SelectBuilder, filter domain.TurnoFilter, prefix string) squirrel.SelectBuilder {
	if filter.PersonaID != nil {
		builder = builder.Where(squirrel.Eq{prefix + "persona_id": *filter.PersonaID})
	}
	if filter.Fecha != nil {
		builder = builder.Where(squirrel.Eq{prefix + "fecha": *filter.Fecha})
	}
	if filter.Desde != nil {
		builder = builder.Where(squirrel.GtOrEq{prefix + "fecha": *filter.Desde})
	}
	if filter.Hasta != nil {
		builder = builder.Where(squirrel.LtOrEq{prefix + "fecha": *filter.Hasta})
	}
	if filter.Estado != nil {
		builder = builder.Where(squirrel.Eq{prefix + "estado": string(*filter.Estado)})
	}
	if len(filter.Estados) > 0 {
		builder = builder.Where(squirrel.Eq{prefix + "estado": estadoStrings(filter.Estados)})
	}
	return builder
}

// ListWithFilter получает турны по фильтру, отсортированные по дате и часу
func (r *Repository) ListWithFilter(ctx context.Context, filter domain.TurnoFilter) ([]*domain.Turno, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := filterConditions(psqlbuilder.Select(turnoColumns...).From("turnos"), filter, "").
		OrderBy("fecha ASC", "hora ASC", "id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListWithFilter - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListWithFilter - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanTurnos(rows, "ListWithFilter")
}

// CountWithFilter считает турны по фильтру
func (r *Repository) CountWithFilter(ctx context.Context, filter domain.TurnoFilter) (int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := filterConditions(psqlbuilder.Select("COUNT(*)").From("turnos"), filter, "").ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: CountWithFilter - build count query: %v", ErrBuildQuery, err)
	}

	var total int
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("%w: CountWithFilter - scan count: %v", ErrScanRow, err)
	}

	return total, nil
}

// ListHorasOcupadas получает занятые часы на дату для указанных состояний
func (r *Repository) ListHorasOcupadas(ctx context.Context, fecha time.Time, estados []domain.EstadoTurno) ([]types.TimeString, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("hora").
		From("turnos").
		Where(squirrel.Eq{"fecha": fecha}).
		Where(squirrel.Eq{"estado": estadoStrings(estados)}).
		OrderBy("hora ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListHorasOcupadas - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListHorasOcupadas - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	horas := make([]types.TimeString, 0)
	for rows.Next() {
		var hora types.TimeString
		if err := rows.Scan(&hora); err != nil {
			return nil, fmt.Errorf("%w: ListHorasOcupadas - scan row: %v", ErrScanRow, err)
		}
		horas = append(horas, hora)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListHorasOcupadas - rows error: %v", ErrScanRow, err)
	}

	return horas, nil
}

// GetConPersonaByID получает турно по ID вместе с данными персоны
func (r *Repository) GetConPersonaByID(ctx context.Context, id int64) (*domain.TurnoConPersona, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"t.id", "t.persona_id", "t.fecha", "t.hora", "t.estado", "t.created_at", "t.updated_at",
		"p.id", "p.nombre", "p.email", "p.dni", "p.telefono", "p.fecha_nacimiento", "p.habilitado",
	).
		From("turnos t").
		Join("personas p ON p.id = t.persona_id").
		Where(squirrel.Eq{"t.id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetConPersonaByID - build select query: %v", ErrBuildQuery, err)
	}

	var tc domain.TurnoConPersona
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&tc.Turno.ID,
		&tc.Turno.PersonaID,
		&tc.Turno.Fecha,
		&tc.Turno.Hora,
		&tc.Turno.Estado,
		&createdAt,
		&updatedAt,
		&tc.Persona.ID,
		&tc.Persona.Nombre,
		&tc.Persona.Email,
		&tc.Persona.DNI,
		&tc.Persona.Telefono,
		&tc.Persona.FechaNacimiento,
		&tc.Persona.Habilitado,
	)

	if err == sql.ErrNoRows {
		return nil, ErrTurnoNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetConPersonaByID - scan turno: %v", ErrScanRow, err)
	}

	tc.Turno.CreatedAt = createdAt.Time
	tc.Turno.UpdatedAt = updatedAt.Time

	return &tc, nil
}

// ListConPersona получает турны по фильтру вместе с данными персоны
func (r *Repository) ListConPersona(ctx context.Context, filter domain.TurnoFilter) ([]*domain.TurnoConPersona, error) {
	return r.listConPersona(ctx, filter, nil, nil)
}

// ListConPersonaPaginated как ListConPersona, но с offset/limit пагинацией
func (r *Repository) ListConPersonaPaginated(ctx context.Context, filter domain.TurnoFilter, offset, limit int) ([]*domain.TurnoConPersona, error) {
	return r.listConPersona(ctx, filter, &offset, &limit)
}

func (r *Repository) listConPersona(ctx context.Context, filter domain.TurnoFilter, offset, limit *int) ([]*domain.TurnoConPersona, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := filterConditions(
		psqlbuilder.Select(
			"t.id", "t.persona_id", "t.fecha", "t.hora", "t.estado", "t.created_at", "t.updated_at",
			"p.id", "p.nombre", "p.email", "p.dni", "p.telefono", "p.fecha_nacimiento", "p.habilitado",
		).
			From("turnos t").
			Join("personas p ON p.id = t.persona_id"),
		filter, "t.").
		OrderBy("t.fecha ASC", "t.hora ASC", "t.id ASC")

	if offset != nil && limit != nil {
		builder = builder.Offset(uint64(*offset)).Limit(uint64(*limit))
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListConPersona - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListConPersona - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	result := make([]*domain.TurnoConPersona, 0)
	for rows.Next() {
		var tc domain.TurnoConPersona
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&tc.Turno.ID,
			&tc.Turno.PersonaID,
			&tc.Turno.Fecha,
			&tc.Turno.Hora,
			&tc.Turno.Estado,
			&createdAt,
			&updatedAt,
			&tc.Persona.ID,
			&tc.Persona.Nombre,
			&tc.Persona.Email,
			&tc.Persona.DNI,
			&tc.Persona.Telefono,
			&tc.Persona.FechaNacimiento,
			&tc.Persona.Habilitado,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: ListConPersona - scan row: %v", ErrScanRow, err)
		}

		tc.Turno.CreatedAt = createdAt.Time
		tc.Turno.UpdatedAt = updatedAt.Time

		result = append(result, &tc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListConPersona - rows error: %v", ErrScanRow, err)
	}

	return result, nil
}

// Update обновляет дату, час и состояние турно (полная замена)
func (r *Repository) Update(ctx context.Context, id int64, t *domain.Turno) (*domain.Turno, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("turnos").
		Set("fecha", t.Fecha).
		Set("hora", t.Hora).
		Set("estado", string(t.Estado)).
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
		return nil, ErrTurnoNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	t.ID = id
	t.CreatedAt = createdAt.Time
	t.UpdatedAt = updatedAt.Time

	return t, nil
}

// UpdateEstado меняет только состояние турно
func (r *Repository) UpdateEstado(ctx context.Context, id int64, estado domain.EstadoTurno) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("turnos").
		Set("estado", string(estado)).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateEstado - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateEstado - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateEstado - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrTurnoNotFound
	}

	return nil
}

// Delete удаляет турно (физическое удаление)
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("turnos").
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
		return ErrTurnoNotFound
	}

	return nil
}

// DeleteByPersonaEstado удаляет все турны персоны в указанном состоянии.
// Возвращает количество удаленных строк.
func (r *Repository) DeleteByPersonaEstado(ctx context.Context, personaID int64, estado domain.EstadoTurno) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("turnos").
		Where(squirrel.Eq{"persona_id": personaID}).
		Where(squirrel.Eq{"estado": string(estado)}).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: DeleteByPersonaEstado - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteByPersonaEstado - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteByPersonaEstado - get rows affected: %v", ErrExecQuery, err)
	}

	return rowsAffected, nil
}

func (r *Repository) scanTurnoRow(row *sql.Row, op string) (*domain.Turno, error) {
	var t domain.Turno
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&t.ID,
		&t.PersonaID,
		&t.Fecha,
		&t.Hora,
		&t.Estado,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrTurnoNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s - scan turno: %v", ErrScanRow, op, err)
	}

	t.CreatedAt = createdAt.Time
	t.UpdatedAt = updatedAt.Time

	return &t, nil
}

// scanTurnos сканирует результаты запроса в слайс турнов
func (r *Repository) scanTurnos(rows *sql.Rows, op string) ([]*domain.Turno, error) {
	turnos := make([]*domain.Turno, 0)

	for rows.Next() {
		var t domain.Turno
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&t.ID,
			&t.PersonaID,
			&t.Fecha,
			&t.Hora,
			&t.Estado,
			&createdAt,
			&updatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: %s - scan row: %v", ErrScanRow, op, err)
		}

		t.CreatedAt = createdAt.Time
		t.UpdatedAt = updatedAt.Time

		turnos = append(turnos, &t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s - rows error: %v", ErrScanRow, op, err)
	}

	return turnos, nil
}

// estadoStrings переводит состояния в строки для SQL аргументов
func estadoStrings(estados []domain.EstadoTurno) []string {
	out := make([]string, 0, len(estados))
	for _, e := range estados {
		out = append(out, string(e))
	}
	return out
}
