package create_finance_record

import (
	"context"

	"github.com/kmlvv/BSM-SalonService/internal/service/finances/models"
)

type FinanceService interface {
	Create(ctx context.Context, req *models.CreateRecordRequest) (*models.RecordResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
