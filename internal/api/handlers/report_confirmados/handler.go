package report_confirmados

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/falvarezg/turnos-service/internal/api/handlers"
	"github.com/falvarezg/turnos-service/internal/domain"
	"github.com/falvarezg/turnos-service/internal/service/reports"
)

const (
	msgMissingRango   = "faltan los parámetros desde y hasta"
	msgInvalidFecha   = "formato de fecha inválido, se espera YYYY-MM-DD"
	msgInvalidRango   = "hasta no puede ser anterior a desde"
	msgInvalidParams  = "parámetros de paginación inválidos"
	msgInvalidFormato = "formato inválido, se espera json, csv o pdf"

	defaultPage    = 1
	defaultPerPage = 20
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

// Handle GET /api/v1/reportes/confirmados?desde=&hasta=&page=&per_page=&formato=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	formato := query.Get("formato")
	if !handlers.ValidFormato(formato) {
		h.logger.Warn("GET /reportes/confirmados - Invalid formato: %s", formato)
		handlers.RespondBadRequest(w, msgInvalidFormato)
		return
	}

	desdeRaw, hastaRaw := query.Get("desde"), query.Get("hasta")
	if desdeRaw == "" || hastaRaw == "" {
		h.logger.Warn("GET /reportes/confirmados - Missing range params")
		handlers.RespondBadRequest(w, msgMissingRango)
		return
	}

	desde, err := time.Parse(domain.DateFormat, desdeRaw)
	if err != nil {
		h.logger.Warn("GET /reportes/confirmados - Invalid desde: %v", err)
		handlers.RespondBadRequest(w, msgInvalidFecha)
		return
	}
	hasta, err := time.Parse(domain.DateFormat, hastaRaw)
	if err != nil {
		h.logger.Warn("GET /reportes/confirmados - Invalid hasta: %v", err)
		handlers.RespondBadRequest(w, msgInvalidFecha)
		return
	}

	page, perPage := defaultPage, defaultPerPage
	if raw := query.Get("page"); raw != "" {
		if page, err = strconv.Atoi(raw); err != nil {
			h.logger.Warn("GET /reportes/confirmados - Invalid page: %v", err)
			handlers.RespondBadRequest(w, msgInvalidParams)
			return
		}
	}
	if raw := query.Get("per_page"); raw != "" {
		if perPage, err = strconv.Atoi(raw); err != nil {
			h.logger.Warn("GET /reportes/confirmados - Invalid per_page: %v", err)
			handlers.RespondBadRequest(w, msgInvalidParams)
			return
		}
	}

	result, err := h.service.ConfirmadosEnRango(r.Context(), desde, hasta, page, perPage)
	if err != nil {
		switch {
		case errors.Is(err, reports.ErrRangoInvalido):
			h.logger.Warn("GET /reportes/confirmados - Invalid range: desde=%s, hasta=%s", desdeRaw, hastaRaw)
			handlers.RespondBadRequest(w, msgInvalidRango)

		case errors.Is(err, reports.ErrInvalidInput):
			h.logger.Warn("GET /reportes/confirmados - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidParams)

		default:
			h.logger.Error("GET /reportes/confirmados - Failed: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	if handled, err := handlers.RespondTable(w, formato, result.ToTable(), "confirmados"); handled {
		if err != nil {
			h.logger.Error("GET /reportes/confirmados - Export failed: %v", err)
		}
		return
	}

	h.logger.Info("GET /reportes/confirmados - Report built: %d of %d turnos (page %d/%d)",
		len(result.Turnos), result.Pagination.Total, result.Pagination.Page, result.Pagination.TotalPages)
	handlers.RespondJSON(w, http.StatusOK, result)
}
