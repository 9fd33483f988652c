package update_turno

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/falvarezg/turnos-service/internal/api/handlers"
	updateTurno "github.com/falvarezg/turnos-service/internal/usecase/update_turno"
)

const (
	msgInvalidTurnoID     = "ID de turno inválido"
	msgInvalidRequestBody = "cuerpo de la solicitud inválido"
	msgInvalidFechaHora   = "formato de fecha u hora inválido, se espera YYYY-MM-DD y HH:MM"
	msgNotFound           = "turno no encontrado"
	msgTransicion         = "el turno está cancelado o asistido y no puede modificarse"
	msgEstadoInvalido     = "estado desconocido"
	msgFechaPasada        = "la fecha del turno ya pasó"
	msgDiaCerrado         = "la clínica no atiende los domingos"
	msgHoraFueraDeVentana = "la hora está fuera del horario de atención"
	msgHoraNoAlineada     = "la hora no coincide con la grilla de turnos"
	msgTurnoOcupado       = "el horario ya está ocupado"
)

type Handler struct {
	useCase UpdateTurnoUseCase
	logger  Logger
}

func NewHandler(useCase UpdateTurnoUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PUT /api/v1/turnos/{turnoId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	turnoID, err := strconv.ParseInt(vars["turnoId"], 10, 64)
	if err != nil {
		h.logger.Warn("PUT /turnos/{id} - Invalid turno ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTurnoID)
		return
	}

	var req UpdateTurnoRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /turnos/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(turnoID)
	if err != nil {
		h.logger.Warn("PUT /turnos/{id} - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidFechaHora)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, updateTurno.ErrTurnoNotFound):
			h.logger.Warn("PUT /turnos/{id} - Turno not found: turno_id=%d", turnoID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, updateTurno.ErrTransicionInvalida):
			h.logger.Warn("PUT /turnos/{id} - Immutable estado: turno_id=%d", turnoID)
			handlers.RespondUnprocessable(w, msgTransicion)

		case errors.Is(err, updateTurno.ErrEstadoInvalido):
			h.logger.Warn("PUT /turnos/{id} - Unknown estado: turno_id=%d, %v", turnoID, err)
			handlers.RespondBadRequest(w, msgEstadoInvalido)

		case errors.Is(err, updateTurno.ErrTurnoOcupado):
			h.logger.Warn("PUT /turnos/{id} - Slot taken: turno_id=%d", turnoID)
			handlers.RespondConflict(w, msgTurnoOcupado)

		case errors.Is(err, updateTurno.ErrFechaPasada):
			h.logger.Warn("PUT /turnos/{id} - Fecha in the past: turno_id=%d", turnoID)
			handlers.RespondBadRequest(w, msgFechaPasada)

		case errors.Is(err, updateTurno.ErrDiaCerrado):
			h.logger.Warn("PUT /turnos/{id} - Sunday requested: turno_id=%d", turnoID)
			handlers.RespondBadRequest(w, msgDiaCerrado)

		case errors.Is(err, updateTurno.ErrHoraFueraDeVentana):
			h.logger.Warn("PUT /turnos/{id} - Hora outside window: turno_id=%d", turnoID)
			handlers.RespondBadRequest(w, msgHoraFueraDeVentana)

		case errors.Is(err, updateTurno.ErrHoraNoAlineada):
			h.logger.Warn("PUT /turnos/{id} - Hora not aligned: turno_id=%d", turnoID)
			handlers.RespondBadRequest(w, msgHoraNoAlineada)

		case errors.Is(err, updateTurno.ErrInvalidInput):
			h.logger.Warn("PUT /turnos/{id} - Invalid input: turno_id=%d, %v", turnoID, err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("PUT /turnos/{id} - Failed to update turno: turno_id=%d, error=%v", turnoID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /turnos/{id} - Turno updated successfully: turno_id=%d", turnoID)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
