package domain

import "time"

// Client карточка клиента салона с историей визитов
type Client struct {
	ID        string
	Name      string
	Phone     string
	Notes     string
	Visits    []Visit
	CreatedAt time.Time
}

// Visit один визит клиента, добавляется в карточку после обслуживания
type Visit struct {
	ID          string
	Date        string // YYYY-MM-DD
	ServiceName string
	Price       float64
	Notes       string
}
