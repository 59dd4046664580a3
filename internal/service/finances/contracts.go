package finances

import (
	"context"

	"github.com/kmlvv/BSM-SalonService/internal/domain"
)

// FinanceRepository интерфейс журнала финансовых записей
type FinanceRepository interface {
	Append(ctx context.Context, record *domain.FinanceRecord) (*domain.FinanceRecord, error)
	List(ctx context.Context, filter domain.FinanceFilter) []*domain.FinanceRecord
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
