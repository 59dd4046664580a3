package models

import (
	"time"

	"github.com/kmlvv/BSM-SalonService/internal/domain"
)

// Request модели

// CreateRecordRequest запрос на ручное добавление финансовой записи
type CreateRecordRequest struct {
	Type        string  `json:"type"`                  // income или expense
	Category    string  `json:"category"`              // Категория в рамках типа
	Amount      float64 `json:"amount"`                // Сумма, больше нуля
	Description string  `json:"description,omitempty"` // Произвольное описание
	Date        string  `json:"date"`                  // YYYY-MM-DD
	Owner       string  `json:"owner"`                 // common или providerId
	CreatedBy   string  `json:"createdBy,omitempty"`   // Кто добавил запись
}

// ListRecordsRequest запрос на выборку финансовых записей
type ListRecordsRequest struct {
	ViewerID *string `json:"viewerId,omitempty"` // Записи, видимые мастеру (common + личные)
	Type     *string `json:"type,omitempty"`     // Фильтр по типу (опционально)
	DateFrom *string `json:"dateFrom,omitempty"` // Начало периода (опционально)
	DateTo   *string `json:"dateTo,omitempty"`   // Конец периода (опционально)
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *ListRecordsRequest) ToDomainFilter() domain.FinanceFilter {
	filter := domain.FinanceFilter{
		ViewerID: r.ViewerID,
		DateFrom: r.DateFrom,
		DateTo:   r.DateTo,
	}
	if r.Type != nil {
		t := domain.FinanceRecordType(*r.Type)
		filter.Type = &t
	}
	return filter
}

// Response модели

// RecordResponse ответ с финансовой записью
type RecordResponse struct {
	ID            string    `json:"id"`
	Type          string    `json:"type"`
	Category      string    `json:"category"`
	Amount        float64   `json:"amount"`
	Description   string    `json:"description,omitempty"`
	Date          string    `json:"date"`
	Owner         string    `json:"owner"`
	CreatedBy     string    `json:"createdBy,omitempty"`
	AppointmentID *string   `json:"appointmentId,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
}

// RecordListResponse ответ со списком финансовых записей
type RecordListResponse struct {
	Records []RecordResponse `json:"records"`
	Total   int              `json:"total"`
}

// FromDomainRecord конвертирует domain модель в response
func FromDomainRecord(r *domain.FinanceRecord) *RecordResponse {
	return &RecordResponse{
		ID:            r.ID,
		Type:          string(r.Type),
		Category:      r.Category,
		Amount:        r.Amount,
		Description:   r.Description,
		Date:          r.Date,
		Owner:         r.Owner,
		CreatedBy:     r.CreatedBy,
		AppointmentID: r.AppointmentID,
		CreatedAt:     r.CreatedAt,
	}
}

// FromDomainRecords конвертирует список domain моделей в response
func FromDomainRecords(items []*domain.FinanceRecord) *RecordListResponse {
	records := make([]RecordResponse, 0, len(items))
	for _, r := range items {
		records = append(records, *FromDomainRecord(r))
	}
	return &RecordListResponse{
		Records: records,
		Total:   len(records),
	}
}
