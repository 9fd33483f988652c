package persona

import "errors"

var (
	// ErrPersonaNotFound возвращается, когда персона не найдена
	ErrPersonaNotFound = errors.New("persona.repository: persona not found")

	// ErrEmailDuplicado возвращается при нарушении уникальности email
	ErrEmailDuplicado = errors.New("persona.repository: email already exists")

	// ErrDNIDuplicado возвращается при нарушении уникальности DNI
	ErrDNIDuplicado = errors.New("persona.repository: dni already exists")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("persona.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("persona.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("persona.repository: failed to scan row")
)
