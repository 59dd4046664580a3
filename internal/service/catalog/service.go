package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/kmlvv/BSM-SalonService/internal/domain"
	catalogRepo "github.com/kmlvv/BSM-SalonService/internal/infra/storage/catalog"
	"github.com/kmlvv/BSM-SalonService/internal/service/catalog/models"
)

// Service сервис каталога услуг салона
type Service struct {
	catalogRepo CatalogRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса каталога
func NewService(catalogRepo CatalogRepository, logger Logger) *Service {
	return &Service{
		catalogRepo: catalogRepo,
		logger:      logger,
	}
}

// List получает все услуги каталога
func (s *Service) List(ctx context.Context) (*models.ServiceListResponse, error) {
	items := s.catalogRepo.List(ctx)
	s.logger.Info("List: found %d services", len(items))
	return models.FromDomainServices(items), nil
}

// GetByID получает услугу по ID
func (s *Service) GetByID(ctx context.Context, id string) (*models.ServiceResponse, error) {
	service, err := s.catalogRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrServiceNotFound) {
			s.logger.Warn("GetByID: service id=%s not found", id)
			return nil, ErrServiceNotFound
		}
		s.logger.Error("GetByID: repository error for service id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainService(service), nil
}

// Create добавляет услугу в каталог
func (s *Service) Create(ctx context.Context, req *models.CreateServiceRequest) (*models.ServiceResponse, error) {
	s.logger.Info("Create: name=%s, price=%.2f, duration=%d", req.Name, req.Price, req.DurationMinutes)

	if err := validateService(req.Name, req.Price, req.DurationMinutes); err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}

	created, err := s.catalogRepo.Create(ctx, &domain.SalonService{
		Name:            req.Name,
		Category:        req.Category,
		Price:           req.Price,
		DurationMinutes: req.DurationMinutes,
	})
	if err != nil {
		s.logger.Error("Create: failed to persist service: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created service id=%s", created.ID)
	return models.FromDomainService(created), nil
}

// Update изменяет услугу каталога.
// Уже созданные записи клиентов хранят свою копию названия и цены и не меняются.
func (s *Service) Update(ctx context.Context, id string, req *models.UpdateServiceRequest) (*models.ServiceResponse, error) {
	s.logger.Info("Update: id=%s, name=%s, price=%.2f", id, req.Name, req.Price)

	if err := validateService(req.Name, req.Price, req.DurationMinutes); err != nil {
		s.logger.Warn("Update: validation failed: %v", err)
		return nil, err
	}

	updated, err := s.catalogRepo.Update(ctx, &domain.SalonService{
		ID:              id,
		Name:            req.Name,
		Category:        req.Category,
		Price:           req.Price,
		DurationMinutes: req.DurationMinutes,
	})
	if err != nil {
		if errors.Is(err, catalogRepo.ErrServiceNotFound) {
			s.logger.Warn("Update: service id=%s not found", id)
			return nil, ErrServiceNotFound
		}
		s.logger.Error("Update: repository error for service id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainService(updated), nil
}

// Delete удаляет услугу из каталога
func (s *Service) Delete(ctx context.Context, id string) error {
	s.logger.Info("Delete: deleting service id=%s", id)

	if err := s.catalogRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, catalogRepo.ErrServiceNotFound) {
			s.logger.Warn("Delete: service id=%s not found", id)
			return ErrServiceNotFound
		}
		s.logger.Error("Delete: repository error for service id=%s: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	return nil
}

func validateService(name string, price float64, durationMinutes int) error {
	if name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if price < 0 {
		return fmt.Errorf("%w: price must not be negative", ErrInvalidInput)
	}
	if durationMinutes < 0 || durationMinutes > domain.MaxAppointmentDurationMinutes {
		return fmt.Errorf("%w: durationMinutes must be between 0 and %d",
			ErrInvalidInput, domain.MaxAppointmentDurationMinutes)
	}
	return nil
}
