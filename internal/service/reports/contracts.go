package reports

import (
	"context"

	"github.com/kmlvv/BSM-SalonService/internal/domain"
)

// FinanceRepository интерфейс журнала финансовых записей
type FinanceRepository interface {
	List(ctx context.Context, filter domain.FinanceFilter) []*domain.FinanceRecord
}

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	List(ctx context.Context, filter domain.AppointmentsFilter) []*domain.Appointment
}

// UserRepository интерфейс репозитория сотрудников
type UserRepository interface {
	List(ctx context.Context) []*domain.User
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
