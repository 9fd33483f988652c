package get_persona

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

// Handle GET /api/v1/personas/{personaId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	personaID, err := strconv.ParseInt(vars["personaId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /personas/{id} - Invalid persona ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPersonaID)
		return
	}

	result, err := h.service.GetByID(r.Context(), personaID)
	if err != nil {
		switch {
		case errors.Is(err, personas.ErrPersonaNotFound):
			h.logger.Warn("GET /personas/{id} - Persona not found: persona_id=%d", personaID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("GET /personas/{id} - Failed to get persona: persona_id=%d, error=%v", personaID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /personas/{id} - Persona retrieved successfully: persona_id=%d", personaID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
