package delete_persona

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/falvarezg/turnos-service/internal/api/handlers"
	"github.com/falvarezg/turnos-service/internal/service/personas"
)

const (
	msgInvalidPersonaID = "ID de persona inválido"
	msgNotFound         = "persona no encontrada"
	msgConTurnos        = "la persona tiene turnos activos y no puede eliminarse"
	msgDeleted          = "persona eliminada"
)

type Handler struct {
	service PersonaService
	logger  Logger
}

func NewHandler(service PersonaService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/personas/{personaId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	personaID, err := strconv.ParseInt(vars["personaId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /personas/{id} - Invalid persona ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPersonaID)
		return
	}

	if err := h.service.Delete(r.Context(), personaID); err != nil {
		switch {
		case errors.Is(err, personas.ErrPersonaNotFound):
			h.logger.Warn("DELETE /personas/{id} - Persona not found: persona_id=%d", personaID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, personas.ErrPersonaConTurnos):
			h.logger.Warn("DELETE /personas/{id} - Persona has active turnos: persona_id=%d", personaID)
			handlers.RespondConflict(w, msgConTurnos)

		default:
			h.logger.Error("DELETE /personas/{id} - Failed to delete persona: persona_id=%d, error=%v", personaID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /personas/{id} - Persona deleted successfully: persona_id=%d", personaID)
	handlers.RespondJSON(w, http.StatusOK, map[string]string{"mensaje": msgDeleted})
}
