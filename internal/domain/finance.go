package domain

import "time"

// FinanceRecordType represents the direction of a finance ledger record
type FinanceRecordType string

const (
	FinanceIncome  FinanceRecordType = "income"
	FinanceExpense FinanceRecordType = "expense"
)

// IsValid returns true if the record type is known
func (t FinanceRecordType) IsValid() bool {
	return t == FinanceIncome || t == FinanceExpense
}

// Категории финансовых записей (набор из исходного продукта)
const (
	CategoryService   = "service"
	CategoryProduct   = "product"
	CategoryRent      = "rent"
	CategoryWater     = "water"
	CategorySupplies  = "supplies"
	CategoryEquipment = "equipment"
	CategoryMarketing = "marketing"
	CategoryOther     = "other"
)

var incomeCategories = []string{CategoryService, CategoryProduct}

var expenseCategories = []string{
	CategoryRent,
	CategoryWater,
	CategorySupplies,
	CategoryEquipment,
	CategoryMarketing,
	CategoryOther,
}

// IsValidCategory проверяет, что категория допустима для типа записи
func IsValidCategory(t FinanceRecordType, category string) bool {
	var categories []string
	switch t {
	case FinanceIncome:
		categories = incomeCategories
	case FinanceExpense:
		categories = expenseCategories
	default:
		return false
	}
	for _, c := range categories {
		if c == category {
			return true
		}
	}
	return false
}

// FinanceRecord represents one entry of the append-only finance ledger.
// Записи либо вводятся вручную, либо порождаются завершением записи клиента.
type FinanceRecord struct {
	ID          string
	Type        FinanceRecordType
	Category    string
	Amount      float64
	Description string
	Date        string // YYYY-MM-DD

	// Owner либо OwnerCommon, либо providerId мастера
	Owner     string
	CreatedBy string

	// AppointmentID слабая обратная ссылка на запись-источник.
	// Удаление записи клиента НЕ удаляет финансовую запись.
	AppointmentID *string

	CreatedAt time.Time
}

// IsDerived returns true if the record was generated from a completed appointment
func (r *FinanceRecord) IsDerived() bool {
	return r.AppointmentID != nil
}

// VisibleTo возвращает true, если запись видна мастеру providerID
// (общие записи видны всем)
func (r *FinanceRecord) VisibleTo(providerID string) bool {
	return r.Owner == OwnerCommon || r.Owner == providerID
}

// FinanceFilter фильтр для выборки финансовых записей
type FinanceFilter struct {
	ViewerID *string            // Записи, видимые этому мастеру (common + личные)
	Type     *FinanceRecordType // Фильтр по типу (опционально)
	DateFrom *string            // Начало периода (опционально)
	DateTo   *string            // Конец периода (опционально)
}
