package cancel_turno

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/falvarezg/turnos-service/internal/api/handlers"
	"github.com/falvarezg/turnos-service/internal/service/turnos"
)

const (
	msgInvalidTurnoID = "ID de turno inválido"
	msgNotFound       = "turno no encontrado"
	msgTransicion     = "solo un turno pendiente puede cancelarse"
)

type Handler struct {
	service TurnoService
	logger  Logger
}

func NewHandler(service TurnoService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/turnos/{turnoId}/cancelar
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	turnoID, err := strconv.ParseInt(vars["turnoId"], 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /turnos/{id}/cancelar - Invalid turno ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTurnoID)
		return
	}

	result, err := h.service.Cancel(r.Context(), turnoID)
	if err != nil {
		switch {
		case errors.Is(err, turnos.ErrTurnoNotFound):
			h.logger.Warn("PATCH /turnos/{id}/cancelar - Turno not found: turno_id=%d", turnoID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, turnos.ErrTransicionInvalida):
			h.logger.Warn("PATCH /turnos/{id}/cancelar - Invalid transition: turno_id=%d", turnoID)
			handlers.RespondUnprocessable(w, msgTransicion)

		default:
			h.logger.Error("PATCH /turnos/{id}/cancelar - Failed to cancel turno: turno_id=%d, error=%v", turnoID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /turnos/{id}/cancelar - Turno cancelled successfully: turno_id=%d", turnoID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
