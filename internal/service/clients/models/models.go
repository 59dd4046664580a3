package models

import (
	"time"

	"github.com/kmlvv/BSM-SalonService/internal/domain"
)

// Request модели

// CreateClientRequest запрос на добавление клиента в картотеку
type CreateClientRequest struct {
	Name  string `json:"name"`
	Phone string `json:"phone,omitempty"`
	Notes string `json:"notes,omitempty"`
}

// AddVisitRequest запрос на добавление визита в карточку клиента
type AddVisitRequest struct {
	Date        string  `json:"date"` // YYYY-MM-DD
	ServiceName string  `json:"serviceName,omitempty"`
	Price       float64 `json:"price,omitempty"`
	Notes       string  `json:"notes,omitempty"`
}

// Response модели

// VisitResponse один визит из карточки клиента
type VisitResponse struct {
	ID          string  `json:"id"`
	Date        string  `json:"date"`
	ServiceName string  `json:"serviceName,omitempty"`
	Price       float64 `json:"price,omitempty"`
	Notes       string  `json:"notes,omitempty"`
}

// ClientResponse ответ с карточкой клиента
type ClientResponse struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Phone     string          `json:"phone,omitempty"`
	Notes     string          `json:"notes,omitempty"`
	Visits    []VisitResponse `json:"visits"`
	CreatedAt time.Time       `json:"createdAt"`
}

// ClientListResponse ответ со списком клиентов
type ClientListResponse struct {
	Clients []ClientResponse `json:"clients"`
	Total   int              `json:"total"`
}

// FromDomainClient конвертирует domain модель в response
func FromDomainClient(c *domain.Client) *ClientResponse {
	visits := make([]VisitResponse, 0, len(c.Visits))
	for _, v := range c.Visits {
		visits = append(visits, VisitResponse{
			ID:          v.ID,
			Date:        v.Date,
			ServiceName: v.ServiceName,
			Price:       v.Price,
			Notes:       v.Notes,
		})
	}
	return &ClientResponse{
		ID:        c.ID,
		Name:      c.Name,
		Phone:     c.Phone,
		Notes:     c.Notes,
		Visits:    visits,
		CreatedAt: c.CreatedAt,
	}
}

// FromDomainClients конвертирует список domain моделей в response
func FromDomainClients(items []*domain.Client) *ClientListResponse {
	clients := make([]ClientResponse, 0, len(items))
	for _, c := range items {
		clients = append(clients, *FromDomainClient(c))
	}
	return &ClientListResponse{
		Clients: clients,
		Total:   len(clients),
	}
}
