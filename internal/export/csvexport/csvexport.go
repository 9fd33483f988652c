// Package csvexport сериализует табличные отчеты в CSV.
package csvexport

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/falvarezg/turnos-service/internal/service/reports/models"
)

// ContentType значение Content-Type для CSV выгрузки
const ContentType = "text/csv; charset=utf-8"

// Write пишет таблицу отчета в w: строка заголовков, затем строки данных
func Write(w io.Writer, table models.Table) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(table.Headers); err != nil {
		return fmt.Errorf("csvexport: write headers: %w", err)
	}
	for _, row := range table.Rows {
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("csvexport: write row: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("csvexport: flush: %w", err)
	}
	return nil
}
