package create_appointment

import (
	"time"

	createAppointment "github.com/kmlvv/BSM-SalonService/internal/usecase/create_appointment"
	"github.com/kmlvv/BSM-SalonService/pkg/types"
)

// CreateAppointmentRequest HTTP request model
type CreateAppointmentRequest struct {
	ProviderID      string  `json:"providerId"`
	Date            string  `json:"date"` // "2026-08-29"
	StartTime       string  `json:"time"` // "10:00"
	DurationMinutes int     `json:"durationMinutes,omitempty"`
	ServiceID       string  `json:"serviceId,omitempty"`
	ServiceName     string  `json:"serviceName,omitempty"`
	Price           float64 `json:"price,omitempty"`
	ClientID        string  `json:"clientId,omitempty"`
	ClientName      string  `json:"clientName"`
	CommonOwned     bool    `json:"commonOwned,omitempty"`
}

// AppointmentResponse HTTP response model
type AppointmentResponse struct {
	ID              string  `json:"id"`
	ProviderID      string  `json:"providerId"`
	ProviderName    string  `json:"providerName,omitempty"`
	Date            string  `json:"date"`
	StartTime       string  `json:"time"`
	DurationMinutes int     `json:"durationMinutes"`
	ServiceID       string  `json:"serviceId,omitempty"`
	ServiceName     string  `json:"serviceName,omitempty"`
	Price           float64 `json:"price"`
	ClientID        string  `json:"clientId,omitempty"`
	ClientName      string  `json:"clientName,omitempty"`
	Status          string  `json:"status"`
	FinanceRecorded bool    `json:"financeRecorded"`
	CreatedAt       string  `json:"createdAt"`
	UpdatedAt       string  `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateAppointmentRequest) ToUseCaseRequest() (*createAppointment.Request, error) {
	// Парсим время начала
	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	return &createAppointment.Request{
		ProviderID:      r.ProviderID,
		Date:            r.Date,
		StartTime:       startTime,
		DurationMinutes: r.DurationMinutes,
		ServiceID:       r.ServiceID,
		ServiceName:     r.ServiceName,
		Price:           r.Price,
		ClientID:        r.ClientID,
		ClientName:      r.ClientName,
		CommonOwned:     r.CommonOwned,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createAppointment.Response) *AppointmentResponse {
	return &AppointmentResponse{
		ID:              resp.ID,
		ProviderID:      resp.ProviderID,
		ProviderName:    resp.ProviderName,
		Date:            resp.Date,
		StartTime:       resp.StartTime.String(),
		DurationMinutes: resp.DurationMinutes,
		ServiceID:       resp.ServiceID,
		ServiceName:     resp.ServiceName,
		Price:           resp.Price,
		ClientID:        resp.ClientID,
		ClientName:      resp.ClientName,
		Status:          resp.Status,
		FinanceRecorded: resp.FinanceRecorded,
		CreatedAt:       resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       resp.UpdatedAt.Format(time.RFC3339),
	}
}
