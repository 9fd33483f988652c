package handlers

import (
	"bytes"
	"net/http"
	"time"

	"github.com/falvarezg/turnos-service/internal/export/csvexport"
	"github.com/falvarezg/turnos-service/internal/export/pdfexport"
	"github.com/falvarezg/turnos-service/internal/service/reports/models"
)

// Formato значения query параметра ?formato= отчетных эндпоинтов
const (
	FormatoJSON = "json"
	FormatoCSV  = "csv"
	FormatoPDF  = "pdf"
)

// ValidFormato проверяет значение параметра formato. Пустое значение
// означает JSON.
func ValidFormato(formato string) bool {
	switch formato {
	case "", FormatoJSON, FormatoCSV, FormatoPDF:
		return true
	default:
		return false
	}
}

// RespondTable пишет таблицу отчета в запрошенном формате. Возвращает false,
// если formato = JSON и сериализацию должен сделать вызывающий.
func RespondTable(w http.ResponseWriter, formato string, table models.Table, filename string) (bool, error) {
	switch formato {
	case FormatoCSV:
		var buf bytes.Buffer
		if err := csvexport.Write(&buf, table); err != nil {
			return true, err
		}
		w.Header().Set("Content-Type", csvexport.ContentType)
		w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`.csv"`)
		w.WriteHeader(http.StatusOK)
		_, err := w.Write(buf.Bytes())
		return true, err

	case FormatoPDF:
		var buf bytes.Buffer
		if err := pdfexport.Write(&buf, table, time.Now()); err != nil {
			return true, err
		}
		w.Header().Set("Content-Type", pdfexport.ContentType)
		w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`.pdf"`)
		w.WriteHeader(http.StatusOK)
		_, err := w.Write(buf.Bytes())
		return true, err

	default:
		return false, nil
	}
}
