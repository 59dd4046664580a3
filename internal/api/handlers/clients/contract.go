package clients

import (
	"context"

	"github.com/kmlvv/BSM-SalonService/internal/service/clients/models"
)

type ClientService interface {
	List(ctx context.Context) (*models.ClientListResponse, error)
	GetByID(ctx context.Context, id string) (*models.ClientResponse, error)
	Create(ctx context.Context, req *models.CreateClientRequest) (*models.ClientResponse, error)
	AddVisit(ctx context.Context, clientID string, req *models.AddVisitRequest) (*models.ClientResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
