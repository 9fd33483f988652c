package create_turno

import "errors"

var (
	// ErrPersonaNotFound возвращается, когда персона не найдена
	ErrPersonaNotFound = errors.New("create_turno: persona not found")

	// ErrPersonaInhabilitada возвращается, когда персона не может бронировать
	// из-за недавних отмен
	ErrPersonaInhabilitada = errors.New("create_turno: persona is not allowed to book")

	// ErrFechaPasada возвращается при попытке бронировать на прошедшую дату
	ErrFechaPasada = errors.New("create_turno: fecha is in the past")

	// ErrDiaCerrado возвращается при попытке бронировать на нерабочий день
	ErrDiaCerrado = errors.New("create_turno: clinic is closed on this day")

	// ErrHoraFueraDeVentana возвращается, когда час вне рабочего окна
	ErrHoraFueraDeVentana = errors.New("create_turno: hora is outside working hours")

	// ErrHoraNoAlineada возвращается, когда час не совпадает с сеткой слотов
	ErrHoraNoAlineada = errors.New("create_turno: hora is not aligned to the slot grid")

	// ErrTurnoOcupado возвращается, когда слот уже занят
	ErrTurnoOcupado = errors.New("create_turno: slot is already taken")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_turno: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_turno: internal error")
)
