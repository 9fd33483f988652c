package delete_turno

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
	msgTransicion     = "un turno asistido no puede eliminarse"
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

// Handle DELETE /api/v1/turnos/{turnoId}
// Отсутствующий турно не ошибка: ответ 200 с eliminado=false
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	turnoID, err := strconv.ParseInt(vars["turnoId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /turnos/{id} - Invalid turno ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTurnoID)
		return
	}

	result, err := h.service.Delete(r.Context(), turnoID)
	if err != nil {
		switch {
		case errors.Is(err, turnos.ErrTransicionInvalida):
			h.logger.Warn("DELETE /turnos/{id} - Turno asistido: turno_id=%d", turnoID)
			handlers.RespondUnprocessable(w, msgTransicion)

		default:
			h.logger.Error("DELETE /turnos/{id} - Failed to delete turno: turno_id=%d, error=%v", turnoID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /turnos/{id} - Delete handled: turno_id=%d, eliminado=%t", turnoID, result.Eliminado)
	handlers.RespondJSON(w, http.StatusOK, result)
}
