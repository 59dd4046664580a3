package get_available_slots

import (
	"fmt"

	"github.com/kmlvv/BSM-SalonService/internal/domain"
	"github.com/kmlvv/BSM-SalonService/pkg/types"
)

// generateGrid генерирует кандидатные старты с фиксированным шагом
// от открытия до закрытия (старт строго раньше границы закрытия)
func generateGrid(schedule Schedule) ([]types.TimeString, error) {
	openMin, err := schedule.Open.Minutes()
	if err != nil {
		return nil, fmt.Errorf("invalid open time: %w", err)
	}
	closeMin, err := schedule.Close.Minutes()
	if err != nil {
		return nil, fmt.Errorf("invalid close time: %w", err)
	}

	grid := make([]types.TimeString, 0, (closeMin-openMin)/schedule.StepMinutes+1)
	for m := openMin; m < closeMin; m += schedule.StepMinutes {
		grid = append(grid, types.TimeString(fmt.Sprintf("%02d:%02d", m/60, m%60)))
	}

	return grid, nil
}

// classifySlot классифицирует один кандидатный старт для указанной длительности.
//
// Приоритет: пересечение с активной записью всегда важнее нехватки времени —
// слот, который и занят, и не помещается до закрытия, отдается как busy.
// Случай "зазор между соседними записями меньше длительности" отдельной ветки
// не требует: старт внутри такого зазора обязательно пересекает следующую
// активную запись и попадает в busy.
func classifySlot(
	start types.TimeString,
	durationMinutes int,
	providerID string,
	closeMinutes int,
	active []*domain.Appointment,
) domain.SlotStatus {
	candidate, err := types.NewInterval(start, durationMinutes)
	if err != nil {
		// Сетка генерируется из валидированного расписания, сюда не попадаем
		return domain.SlotNotEnoughTime
	}

	busySelf := false
	busyOther := false

	for _, appointment := range active {
		interval, err := appointment.Interval()
		if err != nil {
			continue
		}
		if !candidate.Overlaps(interval) {
			continue
		}
		if appointment.ProviderID == providerID {
			busySelf = true
		} else {
			busyOther = true
		}
	}

	// Пересечение с собственной записью важнее пересечения с чужой
	if busySelf {
		return domain.SlotBusySelf
	}
	if busyOther {
		return domain.SlotBusyOther
	}

	if candidate.End > closeMinutes {
		return domain.SlotNotEnoughTime
	}

	return domain.SlotAvailable
}
