package clients

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/kmlvv/BSM-SalonService/internal/domain"
	clientsRepo "github.com/kmlvv/BSM-SalonService/internal/infra/storage/clients"
	"github.com/kmlvv/BSM-SalonService/internal/service/clients/models"
)

// Service сервис картотеки клиентов салона
type Service struct {
	clientRepo ClientRepository
	logger     Logger
}

// NewService создает новый экземпляр сервиса клиентов
func NewService(clientRepo ClientRepository, logger Logger) *Service {
	return &Service{
		clientRepo: clientRepo,
		logger:     logger,
	}
}

// List получает всех клиентов картотеки
func (s *Service) List(ctx context.Context) (*models.ClientListResponse, error) {
	items := s.clientRepo.List(ctx)
	s.logger.Info("List: found %d clients", len(items))
	return models.FromDomainClients(items), nil
}

// GetByID получает карточку клиента по ID
func (s *Service) GetByID(ctx context.Context, id string) (*models.ClientResponse, error) {
	client, err := s.clientRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, clientsRepo.ErrClientNotFound) {
			s.logger.Warn("GetByID: client id=%s not found", id)
			return nil, ErrClientNotFound
		}
		s.logger.Error("GetByID: repository error for client id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainClient(client), nil
}

// Create добавляет клиента в картотеку
func (s *Service) Create(ctx context.Context, req *models.CreateClientRequest) (*models.ClientResponse, error) {
	s.logger.Info("Create: name=%s, phone=%s", req.Name, req.Phone)

	if req.Name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}

	created, err := s.clientRepo.Create(ctx, &domain.Client{
		Name:  req.Name,
		Phone: req.Phone,
		Notes: req.Notes,
	})
	if err != nil {
		s.logger.Error("Create: failed to persist client: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created client id=%s", created.ID)
	return models.FromDomainClient(created), nil
}

// AddVisit добавляет визит в карточку клиента
func (s *Service) AddVisit(ctx context.Context, clientID string, req *models.AddVisitRequest) (*models.ClientResponse, error) {
	s.logger.Info("AddVisit: client=%s, date=%s, service=%s", clientID, req.Date, req.ServiceName)

	if req.Date == "" {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	if _, err := time.Parse(domain.DateFormat, req.Date); err != nil {
		return nil, fmt.Errorf("%w: invalid date %q, expected YYYY-MM-DD", ErrInvalidInput, req.Date)
	}

	updated, err := s.clientRepo.AddVisit(ctx, clientID, domain.Visit{
		Date:        req.Date,
		ServiceName: req.ServiceName,
		Price:       req.Price,
		Notes:       req.Notes,
	})
	if err != nil {
		if errors.Is(err, clientsRepo.ErrClientNotFound) {
			s.logger.Warn("AddVisit: client id=%s not found", clientID)
			return nil, ErrClientNotFound
		}
		s.logger.Error("AddVisit: repository error for client id=%s: %v", clientID, err)
		return nil, fmt.Errorf("%w: AddVisit - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainClient(updated), nil
}
