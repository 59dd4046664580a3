package users

import (
	"context"

	"github.com/kmlvv/BSM-SalonService/internal/domain"
)

// UserRepository интерфейс репозитория сотрудников
type UserRepository interface {
	Count(ctx context.Context) int
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	GetByID(ctx context.Context, id string) (*domain.User, error)
	List(ctx context.Context) []*domain.User
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
