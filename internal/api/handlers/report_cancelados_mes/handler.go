package report_cancelados_mes

import (
	"net/http"

	"github.com/falvarezg/turnos-service/internal/api/handlers"
)

const (
	msgInvalidFormato = "formato inválido, se espera json, csv o pdf"
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

// Handle GET /api/v1/reportes/cancelados-mes?formato=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	formato := r.URL.Query().Get("formato")
	if !handlers.ValidFormato(formato) {
		h.logger.Warn("GET /reportes/cancelados-mes - Invalid formato: %s", formato)
		handlers.RespondBadRequest(w, msgInvalidFormato)
		return
	}

	result, err := h.service.CanceladosMesActual(r.Context())
	if err != nil {
		h.logger.Error("GET /reportes/cancelados-mes - Failed: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	if handled, err := handlers.RespondTable(w, formato, result.ToTable(), "cancelados_"+result.Mes); handled {
		if err != nil {
			h.logger.Error("GET /reportes/cancelados-mes - Export failed: %v", err)
		}
		return
	}

	h.logger.Info("GET /reportes/cancelados-mes - Report built: mes=%s, total=%d", result.Mes, result.Total)
	handlers.RespondJSON(w, http.StatusOK, result)
}
