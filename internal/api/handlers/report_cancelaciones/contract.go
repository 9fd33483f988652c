package report_cancelaciones

import (
	"context"

	"github.com/falvarezg/turnos-service/internal/service/reports/models"
)

type ReportService interface {
	Cancelaciones(ctx context.Context, minCount int) (*models.CancelacionesResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
