package catalog

import (
	"context"

	"github.com/kmlvv/BSM-SalonService/internal/domain"
)

// CatalogRepository интерфейс репозитория каталога услуг
type CatalogRepository interface {
	List(ctx context.Context) []*domain.SalonService
	GetByID(ctx context.Context, id string) (*domain.SalonService, error)
	Create(ctx context.Context, service *domain.SalonService) (*domain.SalonService, error)
	Update(ctx context.Context, service *domain.SalonService) (*domain.SalonService, error)
	Delete(ctx context.Context, id string) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
