package report_cancelados_mes

import (
	"context"

	"github.com/falvarezg/turnos-service/internal/service/reports/models"
)

type ReportService interface {
	CanceladosMesActual(ctx context.Context) (*models.CanceladosMesResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
