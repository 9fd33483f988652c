package get_available_slots

import "time"

// Request модель запроса доступных слотов
type Request struct {
	Fecha time.Time // Дата, на которую запрашиваются слоты
}

// Response модель ответа со свободными слотами
type Response struct {
	Fecha     string   // "2025-11-22"
	Horarios  []string // возрастающие "HH:MM"
	Intervalo int      // шаг сетки в минутах
}
