// Package pdfexport сериализует табличные отчеты в PDF.
package pdfexport

import (
	"fmt"
	"io"
	"time"

	"github.com/go-pdf/fpdf"

	"github.com/falvarezg/turnos-service/internal/service/reports/models"
)

// ContentType значение Content-Type для PDF выгрузки
const ContentType = "application/pdf"

const (
	pageWidth  = 190.0 // A4 минус поля
	rowHeight  = 7.0
	titleSize  = 14.0
	headerSize = 10.0
	cellSize   = 9.0
)

// Write пишет таблицу отчета в w: заголовок, дата генерации и сетка данных
func Write(w io.Writer, table models.Table, generatedAt time.Time) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", titleSize)
	pdf.CellFormat(pageWidth, 10, table.Title, "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 8)
	pdf.CellFormat(pageWidth, 6, "Generado: "+generatedAt.Format("2006-01-02 15:04"), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	colWidth := pageWidth / float64(len(table.Headers))

	pdf.SetFont("Helvetica", "B", headerSize)
	pdf.SetFillColor(220, 220, 220)
	for _, header := range table.Headers {
		pdf.CellFormat(colWidth, rowHeight, header, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(rowHeight)

	pdf.SetFont("Helvetica", "", cellSize)
	for _, row := range table.Rows {
		for _, cell := range row {
			pdf.CellFormat(colWidth, rowHeight, cell, "1", 0, "L", false, 0, "")
		}
		pdf.Ln(rowHeight)
	}

	if len(table.Rows) == 0 {
		pdf.SetFont("Helvetica", "I", cellSize)
		pdf.CellFormat(pageWidth, rowHeight, "Sin datos", "1", 1, "C", false, 0, "")
	}

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("pdfexport: output: %w", err)
	}
	return nil
}
