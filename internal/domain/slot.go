package domain

import "github.com/kmlvv/BSM-SalonService/pkg/types"

// SlotStatus классификация слота сетки расписания для кандидатной длительности
type SlotStatus string

const (
	// SlotAvailable слот свободен и услуга помещается до закрытия
	SlotAvailable SlotStatus = "available"
	// SlotBusySelf слот пересекается с активной записью запрошенного мастера
	SlotBusySelf SlotStatus = "busy_self"
	// SlotBusyOther слот пересекается с активной записью другого мастера
	SlotBusyOther SlotStatus = "busy_other"
	// SlotNotEnoughTime пересечений нет, но услуга не помещается до конца рабочего дня
	SlotNotEnoughTime SlotStatus = "not_enough_time"
)

// Slot один слот сетки с результатом классификации
type Slot struct {
	StartTime       types.TimeString
	DurationMinutes int
	Status          SlotStatus
}

// IsBookable returns true if the slot can be offered for booking
func (s *Slot) IsBookable() bool {
	return s.Status == SlotAvailable
}
