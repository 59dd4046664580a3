package domain

import (
	"time"

	"github.com/kmlvv/BSM-SalonService/pkg/types"
)

// AppointmentStatus represents the lifecycle state of an appointment
type AppointmentStatus string

const (
	StatusScheduled AppointmentStatus = "scheduled"
	StatusConfirmed AppointmentStatus = "confirmed"
	StatusCompleted AppointmentStatus = "completed"
	StatusCancelled AppointmentStatus = "cancelled"
)

// allowedTransitions таблица легальных переходов статусов.
// completed и cancelled терминальны: из них разрешено только удаление записи.
var allowedTransitions = map[AppointmentStatus][]AppointmentStatus{
	StatusScheduled: {StatusConfirmed, StatusCancelled},
	StatusConfirmed: {StatusCompleted, StatusCancelled},
	StatusCompleted: {},
	StatusCancelled: {},
}

// IsValid returns true if the status is one of the known lifecycle states
func (s AppointmentStatus) IsValid() bool {
	_, ok := allowedTransitions[s]
	return ok
}

// CanTransitionTo returns true if the transition s -> target is legal
func (s AppointmentStatus) CanTransitionTo(target AppointmentStatus) bool {
	for _, t := range allowedTransitions[s] {
		if t == target {
			return true
		}
	}
	return false
}

// Appointment represents a client appointment in a provider's calendar
type Appointment struct {
	ID         string
	ProviderID string

	Date      string // YYYY-MM-DD, локальная дата без таймзоны
	StartTime types.TimeString
	// DurationMinutes длительность записи; 0 у старых записей означает 60 минут,
	// см. EffectiveDuration
	DurationMinutes int

	// Denormalized data for history
	ServiceID    string
	ServiceName  string
	Price        float64
	ClientID     string
	ClientName   string
	ProviderName string

	Status AppointmentStatus

	// CommonOwned запись общего салона, а не личная запись мастера;
	// влияет только на owner производного финансового дохода
	CommonOwned bool

	// FinanceRecorded выставляется в true ровно один раз — когда по записи
	// создан производный финансовый доход
	FinanceRecorded bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the appointment participates in conflict checks.
// Отмененные записи освобождают свой слот.
func (a *Appointment) IsActive() bool {
	return a.Status != StatusCancelled
}

// EffectiveDuration returns the appointment duration, falling back to the
// legacy 60-minute default when the stored value is absent
func (a *Appointment) EffectiveDuration() int {
	if a.DurationMinutes <= 0 {
		return DefaultDurationMinutes
	}
	return a.DurationMinutes
}

// Interval returns the [start, start+duration) minute interval of the appointment
func (a *Appointment) Interval() (types.Interval, error) {
	return types.NewInterval(a.StartTime, a.EffectiveDuration())
}

// FinanceOwner returns the owner tag for the derived income record
func (a *Appointment) FinanceOwner() string {
	if a.CommonOwned {
		return OwnerCommon
	}
	return a.ProviderID
}

// AppointmentsFilter фильтр для выборки записей
type AppointmentsFilter struct {
	ProviderID *string            // Фильтр по мастеру (опционально)
	Date       *string            // Фильтр по дате YYYY-MM-DD (опционально)
	Status     *AppointmentStatus // Фильтр по статусу (опционально)
	ActiveOnly bool               // Только записи, участвующие в проверке конфликтов
	SortByTime bool               // Сортировать по времени начала (для отображения дня)
}
