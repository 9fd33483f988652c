package list_personas

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/falvarezg/turnos-service/internal/api/handlers"
	"github.com/falvarezg/turnos-service/internal/service/personas"
)

const (
	msgInvalidParams = "parámetros de paginación inválidos"

	defaultLimit = 100
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

// Handle GET /api/v1/personas?skip=&limit=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	skip, limit := 0, defaultLimit
	var err error

	if raw := r.URL.Query().Get("skip"); raw != "" {
		if skip, err = strconv.Atoi(raw); err != nil {
			h.logger.Warn("GET /personas - Invalid skip: %v", err)
			handlers.RespondBadRequest(w, msgInvalidParams)
			return
		}
	}
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if limit, err = strconv.Atoi(raw); err != nil {
			h.logger.Warn("GET /personas - Invalid limit: %v", err)
			handlers.RespondBadRequest(w, msgInvalidParams)
			return
		}
	}

	result, err := h.service.List(r.Context(), skip, limit)
	if err != nil {
		switch {
		case errors.Is(err, personas.ErrInvalidInput):
			h.logger.Warn("GET /personas - Invalid params: %v", err)
			handlers.RespondBadRequest(w, msgInvalidParams)

		default:
			h.logger.Error("GET /personas - Failed to list personas: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /personas - Listed %d personas", len(result.Personas))
	handlers.RespondJSON(w, http.StatusOK, result)
}
