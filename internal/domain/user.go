package domain

// User сотрудник салона, владеющий собственным календарем
type User struct {
	ID           string
	Username     string
	PasswordHash string
	Name         string
	Role         string
}
