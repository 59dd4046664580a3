package domain

import "time"

// SalonService позиция каталога услуг салона
type SalonService struct {
	ID              string
	Name            string
	Category        string
	Price           float64
	DurationMinutes int
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
