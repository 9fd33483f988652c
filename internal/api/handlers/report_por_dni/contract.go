package report_por_dni

import (
	"context"

	"github.com/falvarezg/turnos-service/internal/service/reports/models"
)

type ReportService interface {
	PorDNI(ctx context.Context, dni string) (*models.PorDNIResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
