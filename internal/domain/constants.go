package domain

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Default schedule values
const (
	// DefaultDurationMinutes длительность записи, когда она не указана
	// (наследие старых данных, где поле отсутствовало)
	DefaultDurationMinutes = 60

	// DefaultOpenTime начало рабочего дня салона
	DefaultOpenTime = "09:00"

	// DefaultCloseTime граница конца последнего бронируемого интервала:
	// интервал, заканчивающийся позже, не помещается в рабочий день
	DefaultCloseTime = "20:30"

	// DefaultSlotStepMinutes шаг сетки кандидатных слотов
	DefaultSlotStepMinutes = 30
)

// Business validation constants
const (
	MinAppointmentDurationMinutes = 5
	MaxAppointmentDurationMinutes = 480
	MaxDescriptionLength          = 500
)

// OwnerCommon sentinel-владелец общих финансовых записей салона
const OwnerCommon = "common"

// RoleCosmetologist роль мастера-косметолога
const RoleCosmetologist = "cosmetologist"
