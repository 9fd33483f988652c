package reports

import "errors"

var (
	// ErrPersonaNotFound возвращается, когда персона не найдена
	ErrPersonaNotFound = errors.New("reports: persona not found")

	// ErrRangoInvalido возвращается, когда hasta раньше desde
	ErrRangoInvalido = errors.New("reports: hasta is before desde")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("reports: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("reports: internal error")
)
