package list_turnos

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/falvarezg/turnos-service/internal/api/handlers"
	"github.com/falvarezg/turnos-service/internal/service/turnos"
)

const (
	msgInvalidParams = "parámetros de paginación inválidos"

	defaultLimit = 100
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

// Handle GET /api/v1/turnos?skip=&limit=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	skip, limit := 0, defaultLimit
	var err error

	if raw := r.URL.Query().Get("skip"); raw != "" {
		if skip, err = strconv.Atoi(raw); err != nil {
			h.logger.Warn("GET /turnos - Invalid skip: %v", err)
			handlers.RespondBadRequest(w, msgInvalidParams)
			return
		}
	}
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if limit, err = strconv.Atoi(raw); err != nil {
			h.logger.Warn("GET /turnos - Invalid limit: %v", err)
			handlers.RespondBadRequest(w, msgInvalidParams)
			return
		}
	}

	result, err := h.service.List(r.Context(), skip, limit)
	if err != nil {
		switch {
		case errors.Is(err, turnos.ErrInvalidInput):
			h.logger.Warn("GET /turnos - Invalid params: %v", err)
			handlers.RespondBadRequest(w, msgInvalidParams)

		default:
			h.logger.Error("GET /turnos - Failed to list turnos: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /turnos - Listed %d turnos across %d personas", result.Total, len(result.Personas))
	handlers.RespondJSON(w, http.StatusOK, result)
}
