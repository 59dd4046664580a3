package models

import (
	"errors"
	"time"

	"github.com/kmlvv/BSM-SalonService/internal/domain"
	"github.com/kmlvv/BSM-SalonService/pkg/types"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid appointment status")
)

// Request модели

// ListAppointmentsRequest запрос на получение списка записей
type ListAppointmentsRequest struct {
	ProviderID *string `json:"providerId,omitempty"` // Фильтр по мастеру (опционально)
	Date       *string `json:"date,omitempty"`       // Фильтр по дате (опционально)
	Status     *string `json:"status,omitempty"`     // Фильтр по статусу (опционально)
	ActiveOnly bool    `json:"activeOnly,omitempty"` // Только неотмененные записи
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *ListAppointmentsRequest) ToDomainFilter() (domain.AppointmentsFilter, error) {
	filter := domain.AppointmentsFilter{
		ProviderID: r.ProviderID,
		Date:       r.Date,
		ActiveOnly: r.ActiveOnly,
		SortByTime: true,
	}

	if r.Status != nil {
		status := domain.AppointmentStatus(*r.Status)
		if !status.IsValid() {
			return filter, ErrInvalidStatus
		}
		filter.Status = &status
	}

	return filter, nil
}

// Response модели

// AppointmentResponse ответ с данными записи
type AppointmentResponse struct {
	ID              string           `json:"id"`
	ProviderID      string           `json:"providerId"`
	ProviderName    string           `json:"providerName,omitempty"`
	Date            string           `json:"date"`
	StartTime       types.TimeString `json:"time"`
	DurationMinutes int              `json:"durationMinutes"`
	ServiceID       string           `json:"serviceId,omitempty"`
	ServiceName     string           `json:"serviceName,omitempty"`
	Price           float64          `json:"price"`
	ClientID        string           `json:"clientId,omitempty"`
	ClientName      string           `json:"clientName,omitempty"`
	Status          string           `json:"status"`
	CommonOwned     bool             `json:"commonOwned,omitempty"`
	FinanceRecorded bool             `json:"financeRecorded"`
	CreatedAt       time.Time        `json:"createdAt"`
	UpdatedAt       time.Time        `json:"updatedAt"`
}

// AppointmentListResponse ответ со списком записей
type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
	Total        int                   `json:"total"`
}

// FromDomainAppointment конвертирует domain модель в response
func FromDomainAppointment(a *domain.Appointment) *AppointmentResponse {
	return &AppointmentResponse{
		ID:              a.ID,
		ProviderID:      a.ProviderID,
		ProviderName:    a.ProviderName,
		Date:            a.Date,
		StartTime:       a.StartTime,
		DurationMinutes: a.DurationMinutes,
		ServiceID:       a.ServiceID,
		ServiceName:     a.ServiceName,
		Price:           a.Price,
		ClientID:        a.ClientID,
		ClientName:      a.ClientName,
		Status:          string(a.Status),
		CommonOwned:     a.CommonOwned,
		FinanceRecorded: a.FinanceRecorded,
		CreatedAt:       a.CreatedAt,
		UpdatedAt:       a.UpdatedAt,
	}
}

// FromDomainAppointments конвертирует список domain моделей в response
func FromDomainAppointments(items []*domain.Appointment) *AppointmentListResponse {
	appointments := make([]AppointmentResponse, 0, len(items))
	for _, a := range items {
		appointments = append(appointments, *FromDomainAppointment(a))
	}
	return &AppointmentListResponse{
		Appointments: appointments,
		Total:        len(appointments),
	}
}
