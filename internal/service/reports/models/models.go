package models

// Request модели

// SummaryRequest запрос сводного отчета за период
type SummaryRequest struct {
	DateFrom *string `json:"dateFrom,omitempty"` // Начало периода (опционально)
	DateTo   *string `json:"dateTo,omitempty"`   // Конец периода (опционально)
}

// Response модели

// ProviderIncome доход одного мастера за период
type ProviderIncome struct {
	ProviderID   string  `json:"providerId"`
	ProviderName string  `json:"providerName"`
	Income       float64 `json:"income"`
	Appointments int     `json:"appointments"` // Завершенные записи за период
}

// SummaryResponse сводный отчет по салону за период
type SummaryResponse struct {
	DateFrom string `json:"dateFrom,omitempty"`
	DateTo   string `json:"dateTo,omitempty"`

	TotalIncome  float64 `json:"totalIncome"`
	TotalExpense float64 `json:"totalExpense"`
	Profit       float64 `json:"profit"`

	AppointmentsByStatus map[string]int `json:"appointmentsByStatus"`

	ByProvider []ProviderIncome `json:"byProvider"`
}
