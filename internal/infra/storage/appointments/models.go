package appointments

import (
	"time"

	"github.com/kmlvv/BSM-SalonService/internal/domain"
	"github.com/kmlvv/BSM-SalonService/pkg/types"
)

// appointmentRecord формат записи в снапшоте "appointments".
// Имена полей стабильны на все время жизни данных: новые поля добавляются
// только как опциональные с безопасным дефолтом для старых записей.
type appointmentRecord struct {
	ID              string    `json:"id"`
	ProviderID      string    `json:"providerId"`
	ProviderName    string    `json:"providerName,omitempty"`
	Date            string    `json:"date"`
	Time            string    `json:"time"`
	DurationMinutes int       `json:"durationMinutes,omitempty"`
	ServiceID       string    `json:"serviceId,omitempty"`
	ServiceName     string    `json:"serviceName,omitempty"`
	Price           float64   `json:"price,omitempty"`
	ClientID        string    `json:"clientId,omitempty"`
	ClientName      string    `json:"clientName,omitempty"`
	Status          string    `json:"status"`
	CommonOwned     bool      `json:"commonOwned,omitempty"`
	FinanceRecorded bool      `json:"financeRecorded"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt,omitempty"`
}

// toDomain конвертирует запись снапшота в доменную модель,
// нормализуя отсутствующую длительность к легаси-дефолту 60 минут
func (r appointmentRecord) toDomain() domain.Appointment {
	duration := r.DurationMinutes
	if duration <= 0 {
		duration = domain.DefaultDurationMinutes
	}

	status := domain.AppointmentStatus(r.Status)
	if !status.IsValid() {
		status = domain.StatusScheduled
	}

	return domain.Appointment{
		ID:              r.ID,
		ProviderID:      r.ProviderID,
		ProviderName:    r.ProviderName,
		Date:            r.Date,
		StartTime:       types.TimeString(r.Time),
		DurationMinutes: duration,
		ServiceID:       r.ServiceID,
		ServiceName:     r.ServiceName,
		Price:           r.Price,
		ClientID:        r.ClientID,
		ClientName:      r.ClientName,
		Status:          status,
		CommonOwned:     r.CommonOwned,
		FinanceRecorded: r.FinanceRecorded,
		CreatedAt:       r.CreatedAt,
		UpdatedAt:       r.UpdatedAt,
	}
}

func fromDomain(a domain.Appointment) appointmentRecord {
	return appointmentRecord{
		ID:              a.ID,
		ProviderID:      a.ProviderID,
		ProviderName:    a.ProviderName,
		Date:            a.Date,
		Time:            a.StartTime.String(),
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
