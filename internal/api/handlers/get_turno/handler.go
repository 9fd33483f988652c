package get_turno

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

// Handle GET /api/v1/turnos/{turnoId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	turnoID, err := strconv.ParseInt(vars["turnoId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /turnos/{id} - Invalid turno ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTurnoID)
		return
	}

	result, err := h.service.GetByID(r.Context(), turnoID)
	if err != nil {
		switch {
		case errors.Is(err, turnos.ErrTurnoNotFound):
			h.logger.Warn("GET /turnos/{id} - Turno not found: turno_id=%d", turnoID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("GET /turnos/{id} - Failed to get turno: turno_id=%d, error=%v", turnoID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /turnos/{id} - Turno retrieved successfully: turno_id=%d", turnoID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
