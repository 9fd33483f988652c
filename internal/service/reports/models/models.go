package models

import (
	"strconv"
	"time"

	"github.com/falvarezg/turnos-service/internal/domain"
)

// PersonaInfo данные персоны внутри отчета
type PersonaInfo struct {
	ID     int64  `json:"id"`
	Nombre string `json:"nombre"`
	DNI    string `json:"dni"`
	Email  string `json:"email"`
	Edad   int    `json:"edad"`
}

// TurnoRow строка турно внутри отчета
type TurnoRow struct {
	ID     int64  `json:"id"`
	Fecha  string `json:"fecha"` // "2025-11-22"
	Hora   string `json:"hora"`  // "09:00"
	Estado string `json:"estado"`
}

// PaginationMetadata метаданные пагинации отчета
type PaginationMetadata struct {
	Total      int  `json:"total"`
	Page       int  `json:"page"`
	PerPage    int  `json:"per_page"`
	TotalPages int  `json:"total_pages"`
	HasNext    bool `json:"has_next"`
	HasPrev    bool `json:"has_prev"`
}

// NewPaginationMetadata строит метаданные для страницы page размером perPage
// при общем количестве total
func NewPaginationMetadata(total, page, perPage int) PaginationMetadata {
	totalPages := 0
	if perPage > 0 {
		totalPages = (total + perPage - 1) / perPage
	}
	return PaginationMetadata{
		Total:      total,
		Page:       page,
		PerPage:    perPage,
		TotalPages: totalPages,
		HasNext:    page < totalPages,
		HasPrev:    page > 1 && total > 0,
	}
}

// PorDNIResponse отчет: все турны одной персоны
type PorDNIResponse struct {
	Persona PersonaInfo `json:"persona"`
	Turnos  []TurnoRow  `json:"turnos"`
	Total   int         `json:"total"`
}

// CancelacionesGroup персона с её отмененными турнами
type CancelacionesGroup struct {
	Persona  PersonaInfo `json:"persona"`
	Turnos   []TurnoRow  `json:"turnos_cancelados"`
	Cantidad int         `json:"cantidad"`
}

// CancelacionesResponse отчет: персоны с minCount и более отменами
type CancelacionesResponse struct {
	MinCount int                   `json:"min_count"`
	Personas []*CancelacionesGroup `json:"personas"`
}

// PorFechaGroup турны одной персоны на дату
type PorFechaGroup struct {
	Persona PersonaInfo `json:"persona"`
	Turnos  []TurnoRow  `json:"turnos"`
}

// PorFechaResponse отчет: все турны на дату, сгруппированные по персонам
type PorFechaResponse struct {
	Fecha    string           `json:"fecha"`
	Personas []*PorFechaGroup `json:"personas"`
	Total    int              `json:"total"`
}

// CanceladosMesGroup персона с отменами текущего месяца
type CanceladosMesGroup struct {
	Persona  PersonaInfo `json:"persona"`
	Turnos   []TurnoRow  `json:"turnos"`
	Cantidad int         `json:"cantidad_mes"`
}

// CanceladosMesResponse отчет: отмены текущего месяца по персонам
type CanceladosMesResponse struct {
	Mes      string                `json:"mes"` // "2025-11"
	Personas []*CanceladosMesGroup `json:"personas"`
	Total    int                   `json:"total"`
}

// ConfirmadoRow подтвержденный турно вместе с данными персоны
type ConfirmadoRow struct {
	Turno   TurnoRow    `json:"turno"`
	Persona PersonaInfo `json:"persona"`
}

// ConfirmadosResponse отчет: подтвержденные турны в диапазоне дат, постранично
type ConfirmadosResponse struct {
	Desde      string             `json:"desde"`
	Hasta      string             `json:"hasta"`
	Turnos     []*ConfirmadoRow   `json:"turnos"`
	Pagination PaginationMetadata `json:"pagination"`
}

// NewPersonaInfo строит данные персоны, вычисляя возраст на hoy
func NewPersonaInfo(p *domain.Persona, hoy time.Time) PersonaInfo {
	edad, err := domain.Edad(p.FechaNacimiento, hoy)
	if err != nil {
		edad = 0
	}
	return PersonaInfo{
		ID:     p.ID,
		Nombre: p.Nombre,
		DNI:    p.DNI,
		Email:  p.Email,
		Edad:   edad,
	}
}

// NewTurnoRow строит строку отчета из domain.Turno
func NewTurnoRow(t *domain.Turno) TurnoRow {
	return TurnoRow{
		ID:     t.ID,
		Fecha:  t.Fecha.Format(domain.DateFormat),
		Hora:   t.Hora.String(),
		Estado: string(t.Estado),
	}
}

// Table плоское табличное представление отчета для экспортеров
type Table struct {
	Title   string
	Headers []string
	Rows    [][]string
}

// ToTable разворачивает отчет по DNI в таблицу
func (r *PorDNIResponse) ToTable() Table {
	rows := make([][]string, 0, len(r.Turnos))
	for _, t := range r.Turnos {
		rows = append(rows, []string{
			strconv.FormatInt(t.ID, 10), r.Persona.Nombre, r.Persona.DNI, t.Fecha, t.Hora, t.Estado,
		})
	}
	return Table{
		Title:   "Turnos de " + r.Persona.Nombre + " (DNI " + r.Persona.DNI + ")",
		Headers: []string{"ID", "Nombre", "DNI", "Fecha", "Hora", "Estado"},
		Rows:    rows,
	}
}

// ToTable разворачивает отчет по отменам в таблицу
func (r *CancelacionesResponse) ToTable() Table {
	rows := make([][]string, 0)
	for _, g := range r.Personas {
		for _, t := range g.Turnos {
			rows = append(rows, []string{
				g.Persona.Nombre, g.Persona.DNI, strconv.Itoa(g.Cantidad), t.Fecha, t.Hora,
			})
		}
	}
	return Table{
		Title:   "Personas con " + strconv.Itoa(r.MinCount) + " o más cancelaciones",
		Headers: []string{"Nombre", "DNI", "Cancelaciones", "Fecha", "Hora"},
		Rows:    rows,
	}
}

// ToTable разворачивает отчет по дате в таблицу
func (r *PorFechaResponse) ToTable() Table {
	rows := make([][]string, 0, r.Total)
	for _, g := range r.Personas {
		for _, t := range g.Turnos {
			rows = append(rows, []string{
				strconv.FormatInt(t.ID, 10), g.Persona.Nombre, g.Persona.DNI, t.Hora, t.Estado,
			})
		}
	}
	return Table{
		Title:   "Turnos del " + r.Fecha,
		Headers: []string{"ID", "Nombre", "DNI", "Hora", "Estado"},
		Rows:    rows,
	}
}

// ToTable разворачивает отчет по отменам месяца в таблицу
func (r *CanceladosMesResponse) ToTable() Table {
	rows := make([][]string, 0, r.Total)
	for _, g := range r.Personas {
		for _, t := range g.Turnos {
			rows = append(rows, []string{
				g.Persona.Nombre, g.Persona.DNI, strconv.Itoa(g.Cantidad), t.Fecha, t.Hora,
			})
		}
	}
	return Table{
		Title:   "Turnos cancelados en " + r.Mes,
		Headers: []string{"Nombre", "DNI", "Cancelados del mes", "Fecha", "Hora"},
		Rows:    rows,
	}
}

// ToTable разворачивает отчет по подтвержденным в таблицу
func (r *ConfirmadosResponse) ToTable() Table {
	rows := make([][]string, 0, len(r.Turnos))
	for _, c := range r.Turnos {
		rows = append(rows, []string{
			strconv.FormatInt(c.Turno.ID, 10), c.Persona.Nombre, c.Persona.DNI, c.Turno.Fecha, c.Turno.Hora,
		})
	}
	return Table{
		Title:   "Turnos confirmados del " + r.Desde + " al " + r.Hasta,
		Headers: []string{"ID", "Nombre", "DNI", "Fecha", "Hora"},
		Rows:    rows,
	}
}
