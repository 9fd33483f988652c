package report_confirmados

import (
	"context"
	"time"

	"github.com/falvarezg/turnos-service/internal/service/reports/models"
)

type ReportService interface {
	ConfirmadosEnRango(ctx context.Context, desde, hasta time.Time, page, perPage int) (*models.ConfirmadosResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
