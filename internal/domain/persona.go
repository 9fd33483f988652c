package domain

import "time"

// Persona represents a registered individual who may hold turnos.
type Persona struct {
	ID              int64
	Nombre          string
	Email           string // unique
	DNI             string // unique, 8 digits
	Telefono        string
	FechaNacimiento time.Time
	Habilitado      bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// PersonaFilter фильтр для поиска и сортировки личностей
type PersonaFilter struct {
	Nombre  *string // substring match, case-insensitive
	Email   *string // substring match, case-insensitive
	EdadMin *int
	EdadMax *int
	OrderBy string // id | nombre | email | fecha_nacimiento | edad
	Order   string // asc | desc
}

// Allowed ordering fields for PersonaFilter.OrderBy.
const (
	OrderByID              = "id"
	OrderByNombre          = "nombre"
	OrderByEmail           = "email"
	OrderByFechaNacimiento = "fecha_nacimiento"
	OrderByEdad            = "edad"
)
