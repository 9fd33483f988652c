package turno

import "errors"

var (
	// ErrTurnoNotFound возвращается, когда турно не найден
	ErrTurnoNotFound = errors.New("turno.repository: turno not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("turno.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("turno.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("turno.repository: failed to scan row")
)
