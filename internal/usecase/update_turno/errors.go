package update_turno

import "errors"

var (
	// ErrTurnoNotFound возвращается, когда турно не найден
	ErrTurnoNotFound = errors.New("update_turno: turno not found")

	// ErrTransicionInvalida возвращается при изменении турно в терминальном
	// состоянии (Cancelado или Asistido)
	ErrTransicionInvalida = errors.New("update_turno: turno state forbids changes")

	// ErrEstadoInvalido возвращается при метке состояния вне настроенного набора
	ErrEstadoInvalido = errors.New("update_turno: unknown estado label")

	// ErrFechaPasada возвращается при переносе на прошедшую дату
	ErrFechaPasada = errors.New("update_turno: fecha is in the past")

	// ErrDiaCerrado возвращается при переносе на нерабочий день
	ErrDiaCerrado = errors.New("update_turno: clinic is closed on this day")

	// ErrHoraFueraDeVentana возвращается, когда час вне рабочего окна
	ErrHoraFueraDeVentana = errors.New("update_turno: hora is outside working hours")

	// ErrHoraNoAlineada возвращается, когда час не совпадает с сеткой слотов
	ErrHoraNoAlineada = errors.New("update_turno: hora is not aligned to the slot grid")

	// ErrTurnoOcupado возвращается, когда целевой слот уже занят
	ErrTurnoOcupado = errors.New("update_turno: slot is already taken")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("update_turno: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("update_turno: internal error")
)
