package models

import (
	"time"

	"github.com/falvarezg/turnos-service/internal/domain"
)

// TurnoResponse ответ с данными турно
type TurnoResponse struct {
	ID        int64     `json:"id"`
	PersonaID int64     `json:"persona_id"`
	Fecha     string    `json:"fecha"` // "2025-11-22"
	Hora      string    `json:"hora"`  // "09:00"
	Estado    string    `json:"estado"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Persona *PersonaInfo `json:"persona,omitempty"`
}

// PersonaInfo сокращенные данные персоны внутри ответа турно
type PersonaInfo struct {
	ID     int64  `json:"id"`
	Nombre string `json:"nombre"`
	DNI    string `json:"dni"`
	Email  string `json:"email"`
	Edad   int    `json:"edad"`
}

// PersonaTurnosGroup турны одной персоны в сгруппированном списке
type PersonaTurnosGroup struct {
	Persona PersonaInfo      `json:"persona"`
	Turnos  []*TurnoResponse `json:"turnos"`
}

// TurnoListResponse сгруппированный по персонам список турнов
type TurnoListResponse struct {
	Personas []*PersonaTurnosGroup `json:"personas"`
	Total    int                   `json:"total"`
}

// DeleteTurnoResponse результат удаления турно
type DeleteTurnoResponse struct {
	Eliminado bool `json:"eliminado"`
}

// FromDomainTurno конвертирует domain.Turno в response без данных персоны
func FromDomainTurno(t *domain.Turno) *TurnoResponse {
	return &TurnoResponse{
		ID:        t.ID,
		PersonaID: t.PersonaID,
		Fecha:     t.Fecha.Format(domain.DateFormat),
		Hora:      t.Hora.String(),
		Estado:    string(t.Estado),
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
}

// FromDomainTurnoConPersona конвертирует joined-строку в response
func FromDomainTurnoConPersona(tc *domain.TurnoConPersona, hoy time.Time) *TurnoResponse {
	resp := FromDomainTurno(&tc.Turno)
	resp.Persona = NewPersonaInfo(&tc.Persona, hoy)
	return resp
}

// NewPersonaInfo строит сокращенные данные персоны, вычисляя возраст на hoy
func NewPersonaInfo(p *domain.Persona, hoy time.Time) *PersonaInfo {
	edad, err := domain.Edad(p.FechaNacimiento, hoy)
	if err != nil {
		edad = 0
	}
	return &PersonaInfo{
		ID:     p.ID,
		Nombre: p.Nombre,
		DNI:    p.DNI,
		Email:  p.Email,
		Edad:   edad,
	}
}

// GroupByPersona группирует joined-строки по персоне, сохраняя порядок
// первого появления каждой персоны
func GroupByPersona(rows []*domain.TurnoConPersona, hoy time.Time) *TurnoListResponse {
	groups := make([]*PersonaTurnosGroup, 0)
	index := make(map[int64]*PersonaTurnosGroup)

	for _, tc := range rows {
		group, ok := index[tc.Persona.ID]
		if !ok {
			group = &PersonaTurnosGroup{
				Persona: *NewPersonaInfo(&tc.Persona, hoy),
				Turnos:  make([]*TurnoResponse, 0),
			}
			index[tc.Persona.ID] = group
			groups = append(groups, group)
		}
		group.Turnos = append(group.Turnos, FromDomainTurno(&tc.Turno))
	}

	return &TurnoListResponse{
		Personas: groups,
		Total:    len(rows),
	}
}
