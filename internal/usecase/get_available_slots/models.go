package get_available_slots

import (
	"github.com/kmlvv/BSM-SalonService/internal/domain"
	"github.com/kmlvv/BSM-SalonService/pkg/types"
)

// Request модель запроса на перечисление слотов
type Request struct {
	ProviderID      string // Мастер, чей календарь смотрим
	Date            string // Дата YYYY-MM-DD
	DurationMinutes int    // Кандидатная длительность услуги; 0 означает 60 минут
}

// Response модель ответа со слотами сетки
type Response struct {
	ProviderID      string
	Date            string
	DurationMinutes int
	Slots           []domain.Slot
}

// Schedule рабочие часы салона и шаг сетки слотов
type Schedule struct {
	Open        types.TimeString // Начало рабочего дня
	Close       types.TimeString // Конец последнего бронируемого интервала
	StepMinutes int              // Шаг сетки кандидатных стартов
}
