package models

import "github.com/kmlvv/BSM-SalonService/internal/domain"

// Request модели

// LoginRequest запрос на вход сотрудника
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Response модели

// UserResponse ответ с данными сотрудника; хеш пароля наружу не отдается
type UserResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Name     string `json:"name"`
	Role     string `json:"role"`
}

// UserListResponse ответ со списком сотрудников
type UserListResponse struct {
	Users []UserResponse `json:"users"`
	Total int            `json:"total"`
}

// FromDomainUser конвертирует domain модель в response
func FromDomainUser(u *domain.User) *UserResponse {
	return &UserResponse{
		ID:       u.ID,
		Username: u.Username,
		Name:     u.Name,
		Role:     u.Role,
	}
}

// FromDomainUsers конвертирует список domain моделей в response
func FromDomainUsers(items []*domain.User) *UserListResponse {
	users := make([]UserResponse, 0, len(items))
	for _, u := range items {
		users = append(users, *FromDomainUser(u))
	}
	return &UserListResponse{
		Users: users,
		Total: len(users),
	}
}
