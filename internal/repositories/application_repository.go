package repositories

import (
	"errors"

	"jobboard_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrApplicationNotFound  = errors.New("application not found")
	ErrDuplicateApplication = errors.New("application already exists")
)

type ApplicationRepository interface {
	FindByID(id uint) (*models.Application, error)
	FindAll() ([]models.Application, error)
	FindByUserID(userID uint) ([]models.Application, error)
	FindByJobID(jobID uint) ([]models.Application, error)
	FindByCompanyID(companyID uint) ([]models.Application, error)
	Create(application *models.Application) error
	UpdateStatus(id uint, status models.ApplicationStatus) error
	Delete(id uint) error
}

type ApplicationRepositoryImpl struct {
	db *gorm.DB
}

func NewApplicationRepository(db *gorm.DB) ApplicationRepository {
	return &ApplicationRepositoryImpl{db: db}
}

func (r *ApplicationRepositoryImpl) FindByID(id uint) (*models.Application, error) {
	var application models.Application
	err := r.db.Preload("User").Preload("Job").First(&application, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrApplicationNotFound
		}
		return nil, err
	}
	return &application, nil
}

func (r *ApplicationRepositoryImpl) FindAll() ([]models.Application, error) {
	var applications []models.Application
	err := r.db.Preload("User").Preload("Job").Order("created_at DESC").Find(&applications).Error
	return applications, err
}

func (r *ApplicationRepositoryImpl) FindByUserID(userID uint) ([]models.Application, error) {
	var applications []models.Application
	err := r.db.Preload("Job").Where("user_id = ?", userID).
		Order("created_at DESC").Find(&applications).Error
	return applications, err
}

func (r *ApplicationRepositoryImpl) FindByJobID(jobID uint) ([]models.Application, error) {
	var applications []models.Application
	err := r.db.Preload("User").Where("job_id = ?", jobID).
		Order("created_at DESC").Find(&applications).Error
	return applications, err
}

// FindByCompanyID - отклики на все вакансии компании (view работодателя),
// вместе с данными соискателя.
func (r *ApplicationRepositoryImpl) FindByCompanyID(companyID uint) ([]models.Application, error) {
	var applications []models.Application
	err := r.db.Preload("User").Preload("Job").
		Joins("JOIN jobs ON jobs.id = applications.job_id").
		Where("jobs.company_id = ?", companyID).
		Order("applications.created_at DESC").
		Find(&applications).Error
	return applications, err
}

func (r *ApplicationRepositoryImpl) Create(application *models.Application) error {
	// Повторный отклик на ту же вакансию не допускается
	var existing models.Application
	err := r.db.Where("user_id = ? AND job_id = ?", application.UserID, application.JobID).
		First(&existing).Error
	if err == nil {
		return ErrDuplicateApplication
	}

	return r.db.Create(application).Error
}

func (r *ApplicationRepositoryImpl) UpdateStatus(id uint, status models.ApplicationStatus) error {
	result := r.db.Model(&models.Application{}).Where("id = ?", id).
		Update("status", status)

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrApplicationNotFound
	}
	return nil
}

func (r *ApplicationRepositoryImpl) Delete(id uint) error {
	result := r.db.Where("id = ?", id).Delete(&models.Application{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrApplicationNotFound
	}
	return nil
}
