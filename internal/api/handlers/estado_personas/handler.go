package estado_personas

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/falvarezg/turnos-service/internal/api/handlers"
)

const (
	msgInvalidEstado = "estado inválido, se espera habilitado o deshabilitado"

	estadoHabilitado    = "habilitado"
	estadoDeshabilitado = "deshabilitado"
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

// Handle GET /api/v1/personas/estado/{estado}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	estado := mux.Vars(r)["estado"]

	var habilitado bool
	switch estado {
	case estadoHabilitado:
		habilitado = true
	case estadoDeshabilitado:
		habilitado = false
	default:
		h.logger.Warn("GET /personas/estado/{estado} - Invalid estado: %s", estado)
		handlers.RespondBadRequest(w, msgInvalidEstado)
		return
	}

	result, err := h.service.ListByEstado(r.Context(), habilitado)
	if err != nil {
		h.logger.Error("GET /personas/estado/{estado} - Failed to list personas: estado=%s, error=%v", estado, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /personas/estado/{estado} - Listed %d personas with estado=%s", len(result.Personas), estado)
	handlers.RespondJSON(w, http.StatusOK, result)
}
