package finances

import (
	"time"

	"github.com/kmlvv/BSM-SalonService/internal/domain"
)

// financeRecord формат записи в снапшоте "finances"
type financeRecord struct {
	ID            string    `json:"id"`
	Type          string    `json:"type"`
	Category      string    `json:"category"`
	Amount        float64   `json:"amount"`
	Description   string    `json:"description,omitempty"`
	Date          string    `json:"date"`
	Owner         string    `json:"owner"`
	CreatedBy     string    `json:"createdBy,omitempty"`
	AppointmentID *string   `json:"appointmentId,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
}

func (r financeRecord) toDomain() domain.FinanceRecord {
	return domain.FinanceRecord{
		ID:            r.ID,
		Type:          domain.FinanceRecordType(r.Type),
		Category:      r.Category,
		Amount:        r.Amount,
		Description:   r.Description,
		Date:          r.Date,
		Owner:         r.Owner,
		CreatedBy:     r.CreatedBy,
		AppointmentID: r.AppointmentID,
		CreatedAt:     r.CreatedAt,
	}
}

func fromDomain(f domain.FinanceRecord) financeRecord {
	return financeRecord{
		ID:            f.ID,
		Type:          string(f.Type),
		Category:      f.Category,
		Amount:        f.Amount,
		Description:   f.Description,
		Date:          f.Date,
		Owner:         f.Owner,
		CreatedBy:     f.CreatedBy,
		AppointmentID: f.AppointmentID,
		CreatedAt:     f.CreatedAt,
	}
}
