package create_persona

import (
	"errors"
	"net/http"

	"github.com/falvarezg/turnos-service/internal/api/handlers"
	"github.com/falvarezg/turnos-service/internal/service/personas"
	"github.com/falvarezg/turnos-service/internal/service/personas/models"
)

const (
	msgInvalidRequestBody = "cuerpo de la solicitud inválido"
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

// Handle POST /api/v1/personas
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.CreatePersonaRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /personas - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, personas.ErrEmailDuplicado):
			h.logger.Warn("POST /personas - Duplicate email: dni=%s", req.DNI)
			handlers.RespondBadRequest(w, msgEmailDuplicado)

		case errors.Is(err, personas.ErrDNIDuplicado):
			h.logger.Warn("POST /personas - Duplicate dni=%s", req.DNI)
			handlers.RespondBadRequest(w, msgDNIDuplicado)

		case errors.Is(err, personas.ErrInvalidInput):
			h.logger.Warn("POST /personas - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /personas - Failed to create persona: dni=%s, error=%v", req.DNI, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /personas - Persona created successfully: persona_id=%d", result.ID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
