package models

import (
	"time"

	"github.com/kmlvv/BSM-SalonService/internal/domain"
)

// Request модели

// CreateMaterialRequest запрос на добавление материала на склад
type CreateMaterialRequest struct {
	Name        string  `json:"name"`
	Quantity    float64 `json:"quantity"`
	Unit        string  `json:"unit,omitempty"`        // шт, мл, г
	MinQuantity float64 `json:"minQuantity,omitempty"` // Порог низкого остатка
}

// UpdateQuantityRequest запрос на изменение остатка материала
type UpdateQuantityRequest struct {
	Quantity float64 `json:"quantity"`
}

// Response модели

// MaterialResponse ответ с материалом склада
type MaterialResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Quantity    float64   `json:"quantity"`
	Unit        string    `json:"unit,omitempty"`
	MinQuantity float64   `json:"minQuantity,omitempty"`
	LowStock    bool      `json:"lowStock"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// MaterialListResponse ответ со списком материалов
type MaterialListResponse struct {
	Materials []MaterialResponse `json:"materials"`
	Total     int                `json:"total"`
}

// FromDomainMaterial конвертирует domain модель в response
func FromDomainMaterial(m *domain.Material) *MaterialResponse {
	return &MaterialResponse{
		ID:          m.ID,
		Name:        m.Name,
		Quantity:    m.Quantity,
		Unit:        m.Unit,
		MinQuantity: m.MinQuantity,
		LowStock:    m.IsLowStock(),
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// FromDomainMaterials конвертирует список domain моделей в response
func FromDomainMaterials(items []*domain.Material) *MaterialListResponse {
	materials := make([]MaterialResponse, 0, len(items))
	for _, m := range items {
		materials = append(materials, *FromDomainMaterial(m))
	}
	return &MaterialListResponse{
		Materials: materials,
		Total:     len(materials),
	}
}
