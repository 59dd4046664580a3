package update_appointment_status

import (
	"time"

	updateStatus "github.com/kmlvv/BSM-SalonService/internal/usecase/update_appointment_status"
)

// UpdateStatusRequest HTTP request model
type UpdateStatusRequest struct {
	Status string `json:"status"` // confirmed, completed или cancelled
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

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *updateStatus.Response) *AppointmentResponse {
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
