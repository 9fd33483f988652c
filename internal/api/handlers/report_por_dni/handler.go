package report_por_dni

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/falvarezg/turnos-service/internal/api/handlers"
	"github.com/falvarezg/turnos-service/internal/service/reports"
)

const (
	msgNotFound       = "persona no encontrada"
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

// Handle GET /api/v1/reportes/turnos/persona/{dni}?formato=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	dni := mux.Vars(r)["dni"]
	formato := r.URL.Query().Get("formato")

	if !handlers.ValidFormato(formato) {
		h.logger.Warn("GET /reportes/turnos/persona/{dni} - Invalid formato: %s", formato)
		handlers.RespondBadRequest(w, msgInvalidFormato)
		return
	}

	result, err := h.service.PorDNI(r.Context(), dni)
	if err != nil {
		switch {
		case errors.Is(err, reports.ErrPersonaNotFound):
			h.logger.Warn("GET /reportes/turnos/persona/{dni} - Persona not found: dni=%s", dni)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, reports.ErrInvalidInput):
			h.logger.Warn("GET /reportes/turnos/persona/{dni} - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("GET /reportes/turnos/persona/{dni} - Failed: dni=%s, error=%v", dni, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	if handled, err := handlers.RespondTable(w, formato, result.ToTable(), "turnos_"+dni); handled {
		if err != nil {
			h.logger.Error("GET /reportes/turnos/persona/{dni} - Export failed: dni=%s, error=%v", dni, err)
		}
		return
	}

	h.logger.Info("GET /reportes/turnos/persona/{dni} - Report built: dni=%s, turnos=%d", dni, result.Total)
	handlers.RespondJSON(w, http.StatusOK, result)
}
