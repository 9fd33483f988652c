package report_por_fecha

import (
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/falvarezg/turnos-service/internal/api/handlers"
	"github.com/falvarezg/turnos-service/internal/domain"
	"github.com/falvarezg/turnos-service/internal/service/reports"
)

const (
	msgInvalidFecha   = "formato de fecha inválido, se espera YYYY-MM-DD"
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

// Handle GET /api/v1/reportes/turnos/fecha/{fecha}?formato=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	raw := mux.Vars(r)["fecha"]
	formato := r.URL.Query().Get("formato")

	if !handlers.ValidFormato(formato) {
		h.logger.Warn("GET /reportes/turnos/fecha/{fecha} - Invalid formato: %s", formato)
		handlers.RespondBadRequest(w, msgInvalidFormato)
		return
	}

	fecha, err := time.Parse(domain.DateFormat, raw)
	if err != nil {
		h.logger.Warn("GET /reportes/turnos/fecha/{fecha} - Invalid fecha: %v", err)
		handlers.RespondBadRequest(w, msgInvalidFecha)
		return
	}

	result, err := h.service.PorFecha(r.Context(), fecha)
	if err != nil {
		switch {
		case errors.Is(err, reports.ErrInvalidInput):
			h.logger.Warn("GET /reportes/turnos/fecha/{fecha} - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidFecha)

		default:
			h.logger.Error("GET /reportes/turnos/fecha/{fecha} - Failed: fecha=%s, error=%v", raw, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	if handled, err := handlers.RespondTable(w, formato, result.ToTable(), "turnos_"+result.Fecha); handled {
		if err != nil {
			h.logger.Error("GET /reportes/turnos/fecha/{fecha} - Export failed: %v", err)
		}
		return
	}

	h.logger.Info("GET /reportes/turnos/fecha/{fecha} - Report built: fecha=%s, turnos=%d", result.Fecha, result.Total)
	handlers.RespondJSON(w, http.StatusOK, result)
}
