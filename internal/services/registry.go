package services

import (
	"gorm.io/gorm"

	"jobboard_backend/internal/email"
	"jobboard_backend/internal/repositories"
)

// ServiceContainer - все сервисы приложения в одном месте
type ServiceContainer struct {
	Auth        *AuthService
	User        *UserService
	Company     *CompanyService
	Job         *JobService
	Application *ApplicationService
	Profile     *ProfileService
}

// NewServiceContainer собирает репозитории и сервисы поверх одного *gorm.DB
func NewServiceContainer(db *gorm.DB, mailer email.Provider) *ServiceContainer {
	users := repositories.NewUserRepository(db)
	companies := repositories.NewCompanyRepository(db)
	jobs := repositories.NewJobRepository(db)
	applications := repositories.NewApplicationRepository(db)
	profiles := repositories.NewProfileRepository(db)

	return &ServiceContainer{
		Auth:        NewAuthService(users, mailer),
		User:        NewUserService(users),
		Company:     NewCompanyService(companies),
		Job:         NewJobService(jobs, companies, profiles),
		Application: NewApplicationService(applications, jobs, companies, users, mailer),
		Profile:     NewProfileService(profiles),
	}
}
