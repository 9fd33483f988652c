package get_available_slots

import "errors"

var (
	// ErrFechaPasada возвращается при запросе слотов на прошедшую дату
	ErrFechaPasada = errors.New("get_available_slots: fecha is in the past")

	// ErrDiaCerrado возвращается при запросе слотов на нерабочий день
	ErrDiaCerrado = errors.New("get_available_slots: clinic is closed on this day")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_available_slots: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_available_slots: internal error")
)
