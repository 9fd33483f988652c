package buscar_personas

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/falvarezg/turnos-service/internal/api/handlers"
	"github.com/falvarezg/turnos-service/internal/service/personas"
	"github.com/falvarezg/turnos-service/internal/service/personas/models"
)

const (
	msgInvalidParams = "parámetros de búsqueda inválidos"

	defaultPage    = 1
	defaultPerPage = 20
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

// Handle GET /api/v1/personas/buscar
// Query params: nombre, email, edad_min, edad_max, order_by, order, page, per_page
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	req := &models.BuscarPersonasRequest{
		OrderBy: query.Get("order_by"),
		Order:   query.Get("order"),
		Page:    defaultPage,
		PerPage: defaultPerPage,
	}

	if raw := query.Get("nombre"); raw != "" {
		req.Nombre = &raw
	}
	if raw := query.Get("email"); raw != "" {
		req.Email = &raw
	}

	var parseErr error
	parseInt := func(name string) *int {
		raw := query.Get(name)
		if raw == "" {
			return nil
		}
		value, err := strconv.Atoi(raw)
		if err != nil {
			parseErr = err
			return nil
		}
		return &value
	}

	req.EdadMin = parseInt("edad_min")
	req.EdadMax = parseInt("edad_max")
	if page := parseInt("page"); page != nil {
		req.Page = *page
	}
	if perPage := parseInt("per_page"); perPage != nil {
		req.PerPage = *perPage
	}

	if parseErr != nil {
		h.logger.Warn("GET /personas/buscar - Invalid numeric param: %v", parseErr)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	result, err := h.service.Buscar(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, personas.ErrInvalidInput):
			h.logger.Warn("GET /personas/buscar - Invalid params: %v", err)
			handlers.RespondBadRequest(w, msgInvalidParams)

		default:
			h.logger.Error("GET /personas/buscar - Search failed: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /personas/buscar - Found %d of %d personas (page %d)",
		len(result.Personas), result.Pagination.Total, result.Pagination.Page)
	handlers.RespondJSON(w, http.StatusOK, result)
}
