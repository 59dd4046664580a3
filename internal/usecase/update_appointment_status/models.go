package update_appointment_status

import (
	"time"

	"github.com/kmlvv/BSM-SalonService/pkg/types"
)

// Request модель запроса на смену статуса записи
type Request struct {
	AppointmentID string // ID записи клиента
	Status        string // Целевой статус: confirmed, completed или cancelled
	ActorID       string // Кто выполняет смену (попадает в финансовую запись)
}

// Response модель ответа с обновленной записью
type Response struct {
	ID              string
	ProviderID      string
	ProviderName    string
	Date            string
	StartTime       types.TimeString
	DurationMinutes int
	ServiceID       string
	ServiceName     string
	Price           float64
	ClientID        string
	ClientName      string
	Status          string
	FinanceRecorded bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
