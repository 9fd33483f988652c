package report_cancelaciones

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/falvarezg/turnos-service/internal/api/handlers"
	"github.com/falvarezg/turnos-service/internal/service/reports"
)

const (
	msgInvalidMin     = "parámetro min inválido"
	msgInvalidFormato = "formato inválido, se espera json, csv o pdf"

	defaultMinCount = 1
)

type Handler struct {
	service ReportService
	logger  Logger
}

func NewHandler(service ReportService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/reportes/cancelaciones?min=&formato=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	formato := r.URL.Query().Get("formato")
	if !handlers.ValidFormato(formato) {
		h.logger.Warn("GET /reportes/cancelaciones - Invalid formato: %s", formato)
		handlers.RespondBadRequest(w, msgInvalidFormato)
		return
	}

	minCount := defaultMinCount
	if raw := r.URL.Query().Get("min"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			h.logger.Warn("GET /reportes/cancelaciones - Invalid min: %v", err)
			handlers.RespondBadRequest(w, msgInvalidMin)
			return
		}
		minCount = parsed
	}

	result, err := h.service.Cancelaciones(r.Context(), minCount)
	if err != nil {
		switch {
		case errors.Is(err, reports.ErrInvalidInput):
			h.logger.Warn("GET /reportes/cancelaciones - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidMin)

		default:
			h.logger.Error("GET /reportes/cancelaciones - Failed: min=%d, error=%v", minCount, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	if handled, err := handlers.RespondTable(w, formato, result.ToTable(), "cancelaciones"); handled {
		if err != nil {
			h.logger.Error("GET /reportes/cancelaciones - Export failed: %v", err)
		}
		return
	}

	h.logger.Info("GET /reportes/cancelaciones - Report built: min=%d, personas=%d", minCount, len(result.Personas))
	handlers.RespondJSON(w, http.StatusOK, result)
}
