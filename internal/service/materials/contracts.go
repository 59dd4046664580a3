package materials

import (
	"context"

	"github.com/kmlvv/BSM-SalonService/internal/domain"
)

// MaterialRepository интерфейс репозитория склада материалов
type MaterialRepository interface {
	List(ctx context.Context) []*domain.Material
	Create(ctx context.Context, material *domain.Material) (*domain.Material, error)
	UpdateQuantity(ctx context.Context, id string, quantity float64) (*domain.Material, error)
	Delete(ctx context.Context, id string) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
