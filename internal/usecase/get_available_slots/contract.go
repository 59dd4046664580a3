package get_available_slots

import (
	"context"

	"github.com/kmlvv/BSM-SalonService/internal/domain"
)

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	List(ctx context.Context, filter domain.AppointmentsFilter) []*domain.Appointment
}

// UserRepository интерфейс репозитория сотрудников
type UserRepository interface {
	GetByID(ctx context.Context, id string) (*domain.User, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
