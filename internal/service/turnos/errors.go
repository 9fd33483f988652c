package turnos

import "errors"

var (
	// ErrTurnoNotFound возвращается, когда турно не найден
	ErrTurnoNotFound = errors.New("turno not found")

	// ErrTransicionInvalida возвращается при недопустимом переходе состояния
	ErrTransicionInvalida = errors.New("invalid estado transition")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
