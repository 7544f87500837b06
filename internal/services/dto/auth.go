package dto

import "jobboard_backend/internal/models"

// SignupRequest - запрос регистрации.
// Роль admin через signup не выдается (админ сидится при старте).
type SignupRequest struct {
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required"`
	FirstName string `json:"firstName" validate:"required,notblank"`
	LastName  string `json:"lastName" validate:"required,notblank"`
	DOB       string `json:"dob" validate:"required,datetime=2006-01-02"`
	Role      string `json:"role" validate:"required,is-user-role"`
}

// LoginRequest - запрос входа
type LoginRequest struct {
	Email    string `json:"email" validate:"required,notblank"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse - ответ на успешный вход (форма исходного API)
type LoginResponse struct {
	Token    string `json:"token"`
	ID       uint   `json:"id"`
	Email    string `json:"email"`
	Fullname string `json:"fullname"`
	Role     string `json:"role"`
}

// UserResponse - публичное представление пользователя
type UserResponse struct {
	ID        uint            `json:"id"`
	Email     string          `json:"email"`
	FirstName string          `json:"firstName"`
	LastName  string          `json:"lastName"`
	Role      models.UserRole `json:"role"`
}

// NewUserResponse строит представление без чувствительных полей
func NewUserResponse(u *models.User) *UserResponse {
	return &UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Role:      u.Role,
	}
}
