package handlers

import (
	"jobboard_backend/internal/services"
	"jobboard_backend/internal/validator"
)

// AppHandlers - все обработчики приложения в одном месте
type AppHandlers struct {
	User        *UserHandler
	Company     *CompanyHandler
	Job         *JobHandler
	Application *ApplicationHandler
	Profile     *ProfileHandler
}

// NewAppHandlers собирает обработчики поверх контейнера сервисов
func NewAppHandlers(sc *services.ServiceContainer, v *validator.Validator) *AppHandlers {
	base := NewBaseHandler(v)
	return &AppHandlers{
		User:        NewUserHandler(base, sc.Auth, sc.User),
		Company:     NewCompanyHandler(base, sc.Company),
		Job:         NewJobHandler(base, sc.Job),
		Application: NewApplicationHandler(base, sc.Application),
		Profile:     NewProfileHandler(base, sc.Profile),
	}
}
