package create_turno

import (
	"time"

	"github.com/falvarezg/turnos-service/internal/domain"
	createTurno "github.com/falvarezg/turnos-service/internal/usecase/create_turno"
	"github.com/falvarezg/turnos-service/pkg/types"
)

// CreateTurnoRequest HTTP request model
type CreateTurnoRequest struct {
	PersonaID int64  `json:"persona_id"`
	Fecha     string `json:"fecha"` // "2025-11-22"
	Hora      string `json:"hora"`  // "09:00"
}

// TurnoResponse HTTP response model
type TurnoResponse struct {
	ID        int64  `json:"id"`
	PersonaID int64  `json:"persona_id"`
	Fecha     string `json:"fecha"`
	Hora      string `json:"hora"`
	Estado    string `json:"estado"`

	Persona PersonaInfo `json:"persona"`

	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

// PersonaInfo данные персоны в ответе
type PersonaInfo struct {
	Nombre string `json:"nombre"`
	DNI    string `json:"dni"`
	Email  string `json:"email"`
	Edad   int    `json:"edad"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateTurnoRequest) ToUseCaseRequest() (*createTurno.Request, error) {
	fecha, err := time.Parse(domain.DateFormat, r.Fecha)
	if err != nil {
		return nil, err
	}

	hora, err := types.NewTimeStringFromString(r.Hora)
	if err != nil {
		return nil, err
	}

	return &createTurno.Request{
		PersonaID: r.PersonaID,
		Fecha:     fecha,
		Hora:      hora,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createTurno.Response) *TurnoResponse {
	return &TurnoResponse{
		ID:        resp.ID,
		PersonaID: resp.PersonaID,
		Fecha:     resp.Fecha.Format(domain.DateFormat),
		Hora:      resp.Hora.String(),
		Estado:    resp.Estado,
		Persona: PersonaInfo{
			Nombre: resp.PersonaNombre,
			DNI:    resp.PersonaDNI,
			Email:  resp.PersonaEmail,
			Edad:   resp.PersonaEdad,
		},
		CreatedAt: resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt: resp.UpdatedAt.Format(time.RFC3339),
	}
}
