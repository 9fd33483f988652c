package update_turno

import (
	"fmt"
	"time"

	"github.com/falvarezg/turnos-service/internal/domain"
	"github.com/falvarezg/turnos-service/pkg/types"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.TurnoID <= 0 {
		return fmt.Errorf("%w: turno_id must be positive", ErrInvalidInput)
	}

	if req.Fecha == nil && req.Hora == nil && req.Estado == nil {
		return fmt.Errorf("%w: at least one field must be provided", ErrInvalidInput)
	}

	if req.Fecha != nil && req.Fecha.IsZero() {
		return fmt.Errorf("%w: fecha must not be zero", ErrInvalidInput)
	}

	if req.Hora != nil {
		if err := req.Hora.Validate(); err != nil {
			return fmt.Errorf("%w: invalid hora format: %v", ErrInvalidInput, err)
		}
	}

	return nil
}

// validateFecha проверяет, что дата не в прошлом и приходится на рабочий день
func validateFecha(fecha, now time.Time) error {
	if domain.FechaPasada(fecha, now) {
		return ErrFechaPasada
	}
	if domain.EsDomingo(fecha) {
		return ErrDiaCerrado
	}
	return nil
}

// validateHora проверяет, что час внутри рабочего окна и на сетке слотов
func validateHora(agenda domain.Agenda, hora types.TimeString) error {
	if !agenda.DentroDeVentana(hora) {
		return fmt.Errorf("%w: hora %s outside [%s, %s]",
			ErrHoraFueraDeVentana, hora, agenda.HoraInicio, agenda.HoraFin)
	}
	if !agenda.AlineadaAlIntervalo(hora) {
		return fmt.Errorf("%w: hora %s not on the %d minute grid",
			ErrHoraNoAlineada, hora, agenda.IntervaloMinutos)
	}
	return nil
}
