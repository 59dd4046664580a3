package materials

import (
	"context"

	"github.com/kmlvv/BSM-SalonService/internal/service/materials/models"
)

type MaterialService interface {
	List(ctx context.Context) (*models.MaterialListResponse, error)
	Create(ctx context.Context, req *models.CreateMaterialRequest) (*models.MaterialResponse, error)
	UpdateQuantity(ctx context.Context, id string, req *models.UpdateQuantityRequest) (*models.MaterialResponse, error)
	Delete(ctx context.Context, id string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
