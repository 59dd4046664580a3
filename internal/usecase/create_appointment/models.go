package create_appointment

import (
	"time"

	"github.com/kmlvv/BSM-SalonService/pkg/types"
)

// Request модель запроса на создание записи клиента
type Request struct {
	ProviderID      string           // ID мастера, в чей календарь идет запись
	Date            string           // Дата записи YYYY-MM-DD
	StartTime       types.TimeString // Время начала, например "10:00"
	DurationMinutes int              // Длительность; 0 означает дефолтные 60 минут
	ServiceID       string           // ID услуги каталога (опционально)
	ServiceName     string           // Название услуги (денормализуется в запись)
	Price           float64          // Цена услуги
	ClientID        string           // ID клиента (опционально)
	ClientName      string           // Имя клиента
	CommonOwned     bool             // Запись общего салона, а не личная
}

// Response модель ответа с созданной записью
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
