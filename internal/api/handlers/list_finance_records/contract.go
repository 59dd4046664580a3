package list_finance_records

import (
	"context"

	"github.com/kmlvv/BSM-SalonService/internal/service/finances/models"
)

type FinanceService interface {
	List(ctx context.Context, req *models.ListRecordsRequest) (*models.RecordListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
