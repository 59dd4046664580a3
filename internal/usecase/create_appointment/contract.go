package create_appointment

import (
	"context"

	"github.com/kmlvv/BSM-SalonService/internal/domain"
)

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	List(ctx context.Context, filter domain.AppointmentsFilter) []*domain.Appointment
	Create(ctx context.Context, appointment *domain.Appointment) (*domain.Appointment, error)
}

// UserRepository интерфейс репозитория сотрудников
type UserRepository interface {
	GetByID(ctx context.Context, id string) (*domain.User, error)
}

// CatalogRepository интерфейс репозитория каталога услуг
type CatalogRepository interface {
	GetByID(ctx context.Context, id string) (*domain.SalonService, error)
}

// TransactionManager интерфейс для сериализации мутаций
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
