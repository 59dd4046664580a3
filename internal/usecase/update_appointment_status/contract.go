package update_appointment_status

import (
	"context"

	"github.com/kmlvv/BSM-SalonService/internal/domain"
)

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Appointment, error)
	Update(ctx context.Context, appointment *domain.Appointment) (*domain.Appointment, error)
}

// FinanceRepository интерфейс журнала финансовых записей
type FinanceRepository interface {
	Append(ctx context.Context, record *domain.FinanceRecord) (*domain.FinanceRecord, error)
	FindByAppointmentID(ctx context.Context, appointmentID string) (*domain.FinanceRecord, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
