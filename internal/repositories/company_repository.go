package repositories

import (
	"errors"

	"jobboard_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrCompanyNotFound      = errors.New("company not found")
	ErrCompanyAlreadyExists = errors.New("company already exists for this user")
)

type CompanyRepository interface {
	FindByID(id uint) (*models.Company, error)
	FindByCreator(userID uint) (*models.Company, error)
	FindAll() ([]models.Company, error)
	Create(company *models.Company) error
	Update(company *models.Company) error
	Delete(companyID uint) error
}

type CompanyRepositoryImpl struct {
	db *gorm.DB
}

func NewCompanyRepository(db *gorm.DB) CompanyRepository {
	return &CompanyRepositoryImpl{db: db}
}

func (r *CompanyRepositoryImpl) FindByID(id uint) (*models.Company, error) {
	var company models.Company
	err := r.db.First(&company, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCompanyNotFound
		}
		return nil, err
	}
	return &company, nil
}

func (r *CompanyRepositoryImpl) FindByCreator(userID uint) (*models.Company, error) {
	var company models.Company
	err := r.db.First(&company, "created_by = ?", userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCompanyNotFound
		}
		return nil, err
	}
	return &company, nil
}

func (r *CompanyRepositoryImpl) FindAll() ([]models.Company, error) {
	var companies []models.Company
	err := r.db.Order("created_at DESC").Find(&companies).Error
	return companies, err
}

func (r *CompanyRepositoryImpl) Create(company *models.Company) error {
	// Один пользователь - одна компания
	var existing models.Company
	if err := r.db.Where("created_by = ?", company.CreatedBy).First(&existing).Error; err == nil {
		return ErrCompanyAlreadyExists
	}

	return r.db.Create(company).Error
}

func (r *CompanyRepositoryImpl) Update(company *models.Company) error {
	result := r.db.Model(company).Updates(map[string]interface{}{
		"name":        company.Name,
		"description": company.Description,
		"website_url": company.WebsiteURL,
	})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrCompanyNotFound
	}
	return nil
}

// Delete удаляет компанию каскадно: сначала отклики на ее вакансии,
// затем вакансии, затем саму компанию. Порядок обязателен из-за
// внешних ключей; транзакция дает семантику "все или ничего".
func (r *CompanyRepositoryImpl) Delete(companyID uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("job_id IN (?)",
			tx.Model(&models.Job{}).Select("id").Where("company_id = ?", companyID),
		).Delete(&models.Application{}).Error; err != nil {
			return err
		}

		if err := tx.Where("company_id = ?", companyID).Delete(&models.Job{}).Error; err != nil {
			return err
		}

		result := tx.Where("id = ?", companyID).Delete(&models.Company{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrCompanyNotFound
		}
		return nil
	})
}
