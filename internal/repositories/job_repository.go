package repositories

import (
	"errors"

	"jobboard_backend/internal/models"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

var ErrJobNotFound = errors.New("job not found")

type JobRepository interface {
	FindByID(id uint) (*models.Job, error)
	FindAll() ([]models.Job, error)
	FindByCompanyID(companyID uint) ([]models.Job, error)
	FindMatchingSkills(skills []string) ([]models.Job, error)
	FindUnappliedMatchingSkills(userID uint, skills []string) ([]models.Job, error)
	Create(job *models.Job) error
	Update(job *models.Job) error
	Delete(jobID uint) error
}

type JobRepositoryImpl struct {
	db *gorm.DB
}

func NewJobRepository(db *gorm.DB) JobRepository {
	return &JobRepositoryImpl{db: db}
}

func (r *JobRepositoryImpl) FindByID(id uint) (*models.Job, error) {
	var job models.Job
	err := r.db.Preload("Company").First(&job, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, err
	}
	return &job, nil
}

func (r *JobRepositoryImpl) FindAll() ([]models.Job, error) {
	var jobs []models.Job
	err := r.db.Order("created_at DESC").Find(&jobs).Error
	return jobs, err
}

func (r *JobRepositoryImpl) FindByCompanyID(companyID uint) ([]models.Job, error) {
	var jobs []models.Job
	err := r.db.Where("company_id = ?", companyID).Order("created_at DESC").Find(&jobs).Error
	return jobs, err
}

// FindMatchingSkills выбирает вакансии, у которых список требований
// пересекается с навыками хотя бы в одном элементе.
// jsonb_exists_any - это операторная функция postgres для `?|`
// (сам оператор конфликтует с плейсхолдерами gorm).
func (r *JobRepositoryImpl) FindMatchingSkills(skills []string) ([]models.Job, error) {
	if len(skills) == 0 {
		return []models.Job{}, nil
	}

	var jobs []models.Job
	err := r.db.
		Where("jsonb_exists_any(requirements, ?)", pq.Array(skills)).
		Order("created_at DESC").
		Find(&jobs).Error
	return jobs, err
}

// FindUnappliedMatchingSkills - то же самое, минус вакансии, на которые
// пользователь уже откликнулся (anti-join по applications).
func (r *JobRepositoryImpl) FindUnappliedMatchingSkills(userID uint, skills []string) ([]models.Job, error) {
	if len(skills) == 0 {
		return []models.Job{}, nil
	}

	var jobs []models.Job
	err := r.db.
		Where("jsonb_exists_any(requirements, ?)", pq.Array(skills)).
		Where("id NOT IN (?)",
			r.db.Model(&models.Application{}).Select("job_id").Where("user_id = ?", userID),
		).
		Order("created_at DESC").
		Find(&jobs).Error
	return jobs, err
}

func (r *JobRepositoryImpl) Create(job *models.Job) error {
	return r.db.Create(job).Error
}

func (r *JobRepositoryImpl) Update(job *models.Job) error {
	result := r.db.Model(job).Updates(map[string]interface{}{
		"title":        job.Title,
		"description":  job.Description,
		"requirements": job.Requirements,
		"location":     job.Location,
		"salary_range": job.SalaryRange,
	})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrJobNotFound
	}
	return nil
}

// Delete удаляет вакансию и ее отклики одной транзакцией
// (отклики первыми, иначе нарушается внешний ключ).
func (r *JobRepositoryImpl) Delete(jobID uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("job_id = ?", jobID).Delete(&models.Application{}).Error; err != nil {
			return err
		}

		result := tx.Where("id = ?", jobID).Delete(&models.Job{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrJobNotFound
		}
		return nil
	})
}
