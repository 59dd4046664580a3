package domain

import "time"

// Material расходный материал на складе салона
type Material struct {
	ID          string
	Name        string
	Quantity    float64
	Unit        string
	MinQuantity float64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// IsLowStock returns true if the remaining quantity is at or below the threshold
func (m *Material) IsLowStock() bool {
	return m.MinQuantity > 0 && m.Quantity <= m.MinQuantity
}
