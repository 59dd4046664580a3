package get_available_slots

import (
	getSlots "github.com/kmlvv/BSM-SalonService/internal/usecase/get_available_slots"
)

// SlotResponse один слот сетки
type SlotResponse struct {
	Time            string `json:"time"`
	DurationMinutes int    `json:"durationMinutes"`
	Status          string `json:"status"` // available, busy_self, busy_other, not_enough_time
}

// SlotsResponse HTTP response model
type SlotsResponse struct {
	ProviderID      string         `json:"providerId"`
	Date            string         `json:"date"`
	DurationMinutes int            `json:"durationMinutes"`
	Slots           []SlotResponse `json:"slots"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getSlots.Response) *SlotsResponse {
	slots := make([]SlotResponse, 0, len(resp.Slots))
	for _, s := range resp.Slots {
		slots = append(slots, SlotResponse{
			Time:            s.StartTime.String(),
			DurationMinutes: s.DurationMinutes,
			Status:          string(s.Status),
		})
	}
	return &SlotsResponse{
		ProviderID:      resp.ProviderID,
		Date:            resp.Date,
		DurationMinutes: resp.DurationMinutes,
		Slots:           slots,
	}
}
