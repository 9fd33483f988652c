package create_turno

import (
	"errors"
	"net/http"

	"github.com/falvarezg/turnos-service/internal/api/handlers"
	createTurno "github.com/falvarezg/turnos-service/internal/usecase/create_turno"
)

const (
	msgInvalidRequestBody = "cuerpo de la solicitud inválido"
	msgInvalidFechaHora   = "formato de fecha u hora inválido, se espera YYYY-MM-DD y HH:MM"
	msgPersonaNotFound    = "persona no encontrada"
	msgInhabilitada       = "la persona no puede reservar turnos por cancelaciones recientes"
	msgFechaPasada        = "la fecha del turno ya pasó"
	msgDiaCerrado         = "la clínica no atiende los domingos"
	msgHoraFueraDeVentana = "la hora está fuera del horario de atención"
	msgHoraNoAlineada     = "la hora no coincide con la grilla de turnos"
	msgTurnoOcupado       = "el horario ya está ocupado"
)

type Handler struct {
	useCase CreateTurnoUseCase
	logger  Logger
}

func NewHandler(useCase CreateTurnoUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/turnos
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateTurnoRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /turnos - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /turnos - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidFechaHora)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createTurno.ErrPersonaNotFound):
			h.logger.Warn("POST /turnos - Persona not found: persona_id=%d", req.PersonaID)
			handlers.RespondNotFound(w, msgPersonaNotFound)

		case errors.Is(err, createTurno.ErrPersonaInhabilitada):
			h.logger.Warn("POST /turnos - Persona inhabilitada: persona_id=%d", req.PersonaID)
			handlers.RespondForbidden(w, msgInhabilitada)

		case errors.Is(err, createTurno.ErrTurnoOcupado):
			h.logger.Warn("POST /turnos - Slot taken: fecha=%s, hora=%s", req.Fecha, req.Hora)
			handlers.RespondConflict(w, msgTurnoOcupado)

		case errors.Is(err, createTurno.ErrFechaPasada):
			h.logger.Warn("POST /turnos - Fecha in the past: fecha=%s", req.Fecha)
			handlers.RespondBadRequest(w, msgFechaPasada)

		case errors.Is(err, createTurno.ErrDiaCerrado):
			h.logger.Warn("POST /turnos - Sunday requested: fecha=%s", req.Fecha)
			handlers.RespondBadRequest(w, msgDiaCerrado)

		case errors.Is(err, createTurno.ErrHoraFueraDeVentana):
			h.logger.Warn("POST /turnos - Hora outside window: hora=%s", req.Hora)
			handlers.RespondBadRequest(w, msgHoraFueraDeVentana)

		case errors.Is(err, createTurno.ErrHoraNoAlineada):
			h.logger.Warn("POST /turnos - Hora not aligned: hora=%s", req.Hora)
			handlers.RespondBadRequest(w, msgHoraNoAlineada)

		case errors.Is(err, createTurno.ErrInvalidInput):
			h.logger.Warn("POST /turnos - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("POST /turnos - Failed to create turno: persona_id=%d, error=%v", req.PersonaID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /turnos - Turno created successfully: turno_id=%d, persona_id=%d", result.ID, req.PersonaID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
