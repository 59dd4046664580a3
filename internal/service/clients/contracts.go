package clients

import (
	"context"

	"github.com/kmlvv/BSM-SalonService/internal/domain"
)

// ClientRepository интерфейс репозитория картотеки клиентов
type ClientRepository interface {
	List(ctx context.Context) []*domain.Client
	GetByID(ctx context.Context, id string) (*domain.Client, error)
	Create(ctx context.Context, client *domain.Client) (*domain.Client, error)
	AddVisit(ctx context.Context, clientID string, visit domain.Visit) (*domain.Client, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
