package personas

import "errors"

var (
	// ErrPersonaNotFound возвращается, когда персона не найдена
	ErrPersonaNotFound = errors.New("persona not found")

	// ErrEmailDuplicado возвращается, когда email уже зарегистрирован
	ErrEmailDuplicado = errors.New("email already registered")

	// ErrDNIDuplicado возвращается, когда DNI уже зарегистрирован
	ErrDNIDuplicado = errors.New("dni already registered")

	// ErrPersonaConTurnos возвращается при удалении персоны с активными турнами
	ErrPersonaConTurnos = errors.New("persona has active turnos")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
