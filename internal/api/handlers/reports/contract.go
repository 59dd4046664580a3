package reports

import (
	"context"

	"github.com/kmlvv/BSM-SalonService/internal/service/reports/models"
)

type ReportService interface {
	Summary(ctx context.Context, req *models.SummaryRequest) (*models.SummaryResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
