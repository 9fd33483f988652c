package update_persona

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/falvarezg/turnos-service/internal/api/handlers"
	"github.com/falvarezg/turnos-service/internal/service/personas"
	"github.com/falvarezg/turnos-service/internal/service/personas/models"
)

const (
	msgInvalidPersonaID   = "ID de persona inválido"
	msgInvalidRequestBody = "cuerpo de la solicitud inválido"
	msgNotFound           = "persona no encontrada"
	msgEmailDuplicado     = "el email ya está registrado"
	msgDNIDuplicado       = "el dni ya está registrado"
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

// Handle PUT /api/v1/personas/{personaId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	personaID, err := strconv.ParseInt(vars["personaId"], 10, 64)
	if err != nil {
		h.logger.Warn("PUT /personas/{id} - Invalid persona ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPersonaID)
		return
	}

	var req models.UpdatePersonaRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /personas/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Update(r.Context(), personaID, &req)
	if err != nil {
		switch {
		case errors.Is(err, personas.ErrPersonaNotFound):
			h.logger.Warn("PUT /personas/{id} - Persona not found: persona_id=%d", personaID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, personas.ErrEmailDuplicado):
			h.logger.Warn("PUT /personas/{id} - Duplicate email: persona_id=%d", personaID)
			handlers.RespondBadRequest(w, msgEmailDuplicado)

		case errors.Is(err, personas.ErrDNIDuplicado):
			h.logger.Warn("PUT /personas/{id} - Duplicate dni: persona_id=%d", personaID)
			handlers.RespondBadRequest(w, msgDNIDuplicado)

		case errors.Is(err, personas.ErrInvalidInput):
			h.logger.Warn("PUT /personas/{id} - Invalid input: persona_id=%d, %v", personaID, err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("PUT /personas/{id} - Failed to update persona: persona_id=%d, error=%v", personaID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /personas/{id} - Persona updated successfully: persona_id=%d", personaID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
