package update_turno

import (
	"time"

	"github.com/falvarezg/turnos-service/internal/domain"
	updateTurno "github.com/falvarezg/turnos-service/internal/usecase/update_turno"
	"github.com/falvarezg/turnos-service/pkg/types"
)

// UpdateTurnoRequest HTTP request model. Все поля опциональны.
type UpdateTurnoRequest struct {
	Fecha  *string `json:"fecha,omitempty"`
	Hora   *string `json:"hora,omitempty"`
	Estado *string `json:"estado,omitempty"`
}

// TurnoResponse HTTP response model
type TurnoResponse struct {
	ID        int64  `json:"id"`
	PersonaID int64  `json:"persona_id"`
	Fecha     string `json:"fecha"`
	Hora      string `json:"hora"`
	Estado    string `json:"estado"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *UpdateTurnoRequest) ToUseCaseRequest(turnoID int64) (*updateTurno.Request, error) {
	req := &updateTurno.Request{
		TurnoID: turnoID,
		Estado:  r.Estado,
	}

	if r.Fecha != nil {
		fecha, err := time.Parse(domain.DateFormat, *r.Fecha)
		if err != nil {
			return nil, err
		}
		req.Fecha = &fecha
	}

	if r.Hora != nil {
		hora, err := types.NewTimeStringFromString(*r.Hora)
		if err != nil {
			return nil, err
		}
		req.Hora = &hora
	}

	return req, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *updateTurno.Response) *TurnoResponse {
	return &TurnoResponse{
		ID:        resp.ID,
		PersonaID: resp.PersonaID,
		Fecha:     resp.Fecha.Format(domain.DateFormat),
		Hora:      resp.Hora.String(),
		Estado:    resp.Estado,
		CreatedAt: resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt: resp.UpdatedAt.Format(time.RFC3339),
	}
}
