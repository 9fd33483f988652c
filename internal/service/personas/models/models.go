package models

import (
	"time"

	"github.com/falvarezg/turnos-service/internal/domain"
)

// Request модели

// CreatePersonaRequest запрос на регистрацию персоны
type CreatePersonaRequest struct {
	Nombre          string  `json:"nombre"`
	Email           string  `json:"email"`
	DNI             string  `json:"dni"`
	Telefono        *string `json:"telefono,omitempty"`
	FechaNacimiento string  `json:"fecha_nacimiento"` // "1990-05-15"
}

// UpdatePersonaRequest запрос на обновление персоны. Все поля, кроме
// телефона, обязательны: запись заменяется целиком.
type UpdatePersonaRequest struct {
	Nombre          string  `json:"nombre"`
	Email           string  `json:"email"`
	DNI             string  `json:"dni"`
	Telefono        *string `json:"telefono,omitempty"`
	FechaNacimiento string  `json:"fecha_nacimiento"` // "1990-05-15"
}

// BuscarPersonasRequest запрос на поиск персон с фильтрами и сортировкой
type BuscarPersonasRequest struct {
	Nombre  *string `json:"nombre,omitempty"`
	Email   *string `json:"email,omitempty"`
	EdadMin *int    `json:"edad_min,omitempty"`
	EdadMax *int    `json:"edad_max,omitempty"`
	OrderBy string  `json:"order_by,omitempty"`
	Order   string  `json:"order,omitempty"`
	Page    int     `json:"page"`
	PerPage int     `json:"per_page"`
}

// Response модели

// PersonaResponse ответ с данными персоны
type PersonaResponse struct {
	ID              int64     `json:"id"`
	Nombre          string    `json:"nombre"`
	Email           string    `json:"email"`
	DNI             string    `json:"dni"`
	Telefono        string    `json:"telefono,omitempty"`
	FechaNacimiento string    `json:"fecha_nacimiento"` // "1990-05-15"
	Edad            int       `json:"edad"`
	Habilitado      bool      `json:"habilitado"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// PaginationMetadata метаданные пагинации списковых ответов
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

// PersonaListResponse ответ со списком персон
type PersonaListResponse struct {
	Personas []*PersonaResponse `json:"personas"`
}

// PersonaPageResponse ответ со страницей персон и метаданными пагинации
type PersonaPageResponse struct {
	Personas   []*PersonaResponse `json:"personas"`
	Pagination PaginationMetadata `json:"pagination"`
}

// FromDomainPersona конвертирует domain.Persona в response, вычисляя возраст
// на момент hoy
func FromDomainPersona(p *domain.Persona, hoy time.Time) *PersonaResponse {
	edad, err := domain.Edad(p.FechaNacimiento, hoy)
	if err != nil {
		edad = 0
	}
	return &PersonaResponse{
		ID:              p.ID,
		Nombre:          p.Nombre,
		Email:           p.Email,
		DNI:             p.DNI,
		Telefono:        p.Telefono,
		FechaNacimiento: p.FechaNacimiento.Format(domain.DateFormat),
		Edad:            edad,
		Habilitado:      p.Habilitado,
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}
}

// FromDomainPersonaList конвертирует слайс domain.Persona в response
func FromDomainPersonaList(personas []*domain.Persona, hoy time.Time) *PersonaListResponse {
	out := make([]*PersonaResponse, 0, len(personas))
	for _, p := range personas {
		out = append(out, FromDomainPersona(p, hoy))
	}
	return &PersonaListResponse{Personas: out}
}
