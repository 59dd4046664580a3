package materials

import (
	"context"
	"errors"
	"fmt"

	"github.com/kmlvv/BSM-SalonService/internal/domain"
	materialsRepo "github.com/kmlvv/BSM-SalonService/internal/infra/storage/materials"
	"github.com/kmlvv/BSM-SalonService/internal/service/materials/models"
)

// Service сервис склада расходных материалов
type Service struct {
	materialRepo MaterialRepository
	logger       Logger
}

// NewService создает новый экземпляр сервиса материалов
func NewService(materialRepo MaterialRepository, logger Logger) *Service {
	return &Service{
		materialRepo: materialRepo,
		logger:       logger,
	}
}

// List получает все материалы склада
func (s *Service) List(ctx context.Context) (*models.MaterialListResponse, error) {
	items := s.materialRepo.List(ctx)
	s.logger.Info("List: found %d materials", len(items))
	return models.FromDomainMaterials(items), nil
}

// Create добавляет материал на склад
func (s *Service) Create(ctx context.Context, req *models.CreateMaterialRequest) (*models.MaterialResponse, error) {
	s.logger.Info("Create: name=%s, quantity=%.2f %s", req.Name, req.Quantity, req.Unit)

	if req.Name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if req.Quantity < 0 || req.MinQuantity < 0 {
		return nil, fmt.Errorf("%w: quantity must not be negative", ErrInvalidInput)
	}

	created, err := s.materialRepo.Create(ctx, &domain.Material{
		Name:        req.Name,
		Quantity:    req.Quantity,
		Unit:        req.Unit,
		MinQuantity: req.MinQuantity,
	})
	if err != nil {
		s.logger.Error("Create: failed to persist material: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created material id=%s", created.ID)
	return models.FromDomainMaterial(created), nil
}

// UpdateQuantity выставляет новый остаток материала
func (s *Service) UpdateQuantity(ctx context.Context, id string, req *models.UpdateQuantityRequest) (*models.MaterialResponse, error) {
	s.logger.Info("UpdateQuantity: id=%s, quantity=%.2f", id, req.Quantity)

	if req.Quantity < 0 {
		return nil, fmt.Errorf("%w: quantity must not be negative", ErrInvalidInput)
	}

	updated, err := s.materialRepo.UpdateQuantity(ctx, id, req.Quantity)
	if err != nil {
		if errors.Is(err, materialsRepo.ErrMaterialNotFound) {
			s.logger.Warn("UpdateQuantity: material id=%s not found", id)
			return nil, ErrMaterialNotFound
		}
		s.logger.Error("UpdateQuantity: repository error for material id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: UpdateQuantity - repository error: %v", ErrInternal, err)
	}

	if updated.IsLowStock() {
		s.logger.Warn("UpdateQuantity: material id=%s (%s) is low on stock: %.2f <= %.2f",
			updated.ID, updated.Name, updated.Quantity, updated.MinQuantity)
	}

	return models.FromDomainMaterial(updated), nil
}

// Delete удаляет материал со склада
func (s *Service) Delete(ctx context.Context, id string) error {
	s.logger.Info("Delete: deleting material id=%s", id)

	if err := s.materialRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, materialsRepo.ErrMaterialNotFound) {
			s.logger.Warn("Delete: material id=%s not found", id)
			return ErrMaterialNotFound
		}
		s.logger.Error("Delete: repository error for material id=%s: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	return nil
}
