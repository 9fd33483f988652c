package turno

import (
	"github.com/falvarezg/turnos-service/pkg/dbmetrics"
)

// Переиспользуем интерфейс исполнителя из dbmetrics для работы с БД
type DBExecutor = dbmetrics.DBExecutor
