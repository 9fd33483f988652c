package report_por_fecha

import (
	"context"
	"time"

	"github.com/falvarezg/turnos-service/internal/service/reports/models"
)

type ReportService interface {
	PorFecha(ctx context.Context, fecha time.Time) (*models.PorFechaResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
