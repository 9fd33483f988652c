package get_available_slots

import (
	"errors"
	"net/http"
	"time"

	"github.com/falvarezg/turnos-service/internal/api/handlers"
	"github.com/falvarezg/turnos-service/internal/domain"
	getAvailableSlots "github.com/falvarezg/turnos-service/internal/usecase/get_available_slots"
)

const (
	msgMissingFecha = "falta el parámetro fecha"
	msgInvalidFecha = "formato de fecha inválido, se espera YYYY-MM-DD"
	msgFechaPasada  = "la fecha ya pasó"
	msgDiaCerrado   = "la clínica no atiende los domingos"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// SlotsResponse HTTP response model
type SlotsResponse struct {
	Fecha     string   `json:"fecha"`
	Horarios  []string `json:"horarios_disponibles"`
	Intervalo int      `json:"intervalo_minutos"`
}

// Handle GET /api/v1/turnos/horarios-disponibles?fecha=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get("fecha")
	if raw == "" {
		h.logger.Warn("GET /turnos/horarios-disponibles - Missing fecha")
		handlers.RespondBadRequest(w, msgMissingFecha)
		return
	}

	fecha, err := time.Parse(domain.DateFormat, raw)
	if err != nil {
		h.logger.Warn("GET /turnos/horarios-disponibles - Invalid fecha: %v", err)
		handlers.RespondBadRequest(w, msgInvalidFecha)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getAvailableSlots.Request{Fecha: fecha})
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrFechaPasada):
			h.logger.Warn("GET /turnos/horarios-disponibles - Fecha in the past: %s", raw)
			handlers.RespondBadRequest(w, msgFechaPasada)

		case errors.Is(err, getAvailableSlots.ErrDiaCerrado):
			h.logger.Warn("GET /turnos/horarios-disponibles - Sunday requested: %s", raw)
			handlers.RespondBadRequest(w, msgDiaCerrado)

		default:
			h.logger.Error("GET /turnos/horarios-disponibles - Failed: fecha=%s, error=%v", raw, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /turnos/horarios-disponibles - %d slots available on %s", len(result.Horarios), result.Fecha)
	handlers.RespondJSON(w, http.StatusOK, SlotsResponse{
		Fecha:     result.Fecha,
		Horarios:  result.Horarios,
		Intervalo: result.Intervalo,
	})
}
