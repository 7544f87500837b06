package repositories

import (
	"errors"

	"jobboard_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrProfileNotFound      = errors.New("profile not found")
	ErrProfileAlreadyExists = errors.New("profile already exists for this user")
)

type ProfileRepository interface {
	FindByID(id uint) (*models.Profile, error)
	FindByUserID(userID uint) (*models.Profile, error)
	FindAll() ([]models.Profile, error)
	Create(profile *models.Profile) error
	Update(profile *models.Profile) error
	Delete(id uint) error
}

type ProfileRepositoryImpl struct {
	db *gorm.DB
}

func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &ProfileRepositoryImpl{db: db}
}

func (r *ProfileRepositoryImpl) FindByID(id uint) (*models.Profile, error) {
	var profile models.Profile
	err := r.db.First(&profile, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}

func (r *ProfileRepositoryImpl) FindByUserID(userID uint) (*models.Profile, error) {
	var profile models.Profile
	err := r.db.First(&profile, "user_id = ?", userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}

func (r *ProfileRepositoryImpl) FindAll() ([]models.Profile, error) {
	var profiles []models.Profile
	err := r.db.Order("created_at DESC").Find(&profiles).Error
	return profiles, err
}

func (r *ProfileRepositoryImpl) Create(profile *models.Profile) error {
	// Один пользователь - один профиль
	var existing models.Profile
	if err := r.db.Where("user_id = ?", profile.UserID).First(&existing).Error; err == nil {
		return ErrProfileAlreadyExists
	}

	return r.db.Create(profile).Error
}

func (r *ProfileRepositoryImpl) Update(profile *models.Profile) error {
	result := r.db.Model(profile).Updates(map[string]interface{}{
		"bio":        profile.Bio,
		"skills":     profile.Skills,
		"resume_url": profile.ResumeURL,
	})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrProfileNotFound
	}
	return nil
}

func (r *ProfileRepositoryImpl) Delete(id uint) error {
	result := r.db.Where("id = ?", id).Delete(&models.Profile{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrProfileNotFound
	}
	return nil
}
