package models

import (
	"time"

	"github.com/kmlvv/BSM-SalonService/internal/domain"
)

// Request модели

// CreateServiceRequest запрос на добавление услуги в каталог
type CreateServiceRequest struct {
	Name            string  `json:"name"`
	Category        string  `json:"category,omitempty"`
	Price           float64 `json:"price"`
	DurationMinutes int     `json:"durationMinutes,omitempty"` // 0 означает 60 минут
}

// UpdateServiceRequest запрос на изменение услуги каталога
type UpdateServiceRequest struct {
	Name            string  `json:"name"`
	Category        string  `json:"category,omitempty"`
	Price           float64 `json:"price"`
	DurationMinutes int     `json:"durationMinutes,omitempty"`
}

// Response модели

// ServiceResponse ответ с услугой каталога
type ServiceResponse struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Category        string    `json:"category,omitempty"`
	Price           float64   `json:"price"`
	DurationMinutes int       `json:"durationMinutes"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// ServiceListResponse ответ со списком услуг каталога
type ServiceListResponse struct {
	Services []ServiceResponse `json:"services"`
	Total    int               `json:"total"`
}

// FromDomainService конвертирует domain модель в response
func FromDomainService(s *domain.SalonService) *ServiceResponse {
	return &ServiceResponse{
		ID:              s.ID,
		Name:            s.Name,
		Category:        s.Category,
		Price:           s.Price,
		DurationMinutes: s.DurationMinutes,
		CreatedAt:       s.CreatedAt,
		UpdatedAt:       s.UpdatedAt,
	}
}

// FromDomainServices конвертирует список domain моделей в response
func FromDomainServices(items []*domain.SalonService) *ServiceListResponse {
	services := make([]ServiceResponse, 0, len(items))
	for _, s := range items {
		services = append(services, *FromDomainService(s))
	}
	return &ServiceListResponse{
		Services: services,
		Total:    len(services),
	}
}
