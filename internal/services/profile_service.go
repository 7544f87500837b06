package services

import (
	"errors"

	"jobboard_backend/internal/auth"
	"jobboard_backend/internal/logger"
	"jobboard_backend/internal/models"
	"jobboard_backend/internal/repositories"
	"jobboard_backend/internal/services/dto"
	"jobboard_backend/pkg/apperrors"
)

// ProfileService - профили соискателей
type ProfileService struct {
	profiles repositories.ProfileRepository
}

func NewProfileService(profiles repositories.ProfileRepository) *ProfileService {
	return &ProfileService{profiles: profiles}
}

// CreateProfile заводит профиль текущего пользователя.
// У одного пользователя может быть только один профиль.
func (s *ProfileService) CreateProfile(p auth.Principal, req *dto.CreateProfileRequest) (*dto.ProfileResponse, *apperrors.AppError) {
	if !p.HasRole(auth.RoleUser) {
		return nil, apperrors.ErrInsufficientPermissions
	}
	profile := &models.Profile{
		Bio:       req.Bio,
		Skills:    models.StringList(req.Skills),
		ResumeURL: req.ResumeURL,
		UserID:    p.UserID,
	}
	if err := s.profiles.Create(profile); err != nil {
		if errors.Is(err, repositories.ErrProfileAlreadyExists) {
			return nil, apperrors.ErrProfileAlreadyExists
		}
		return nil, apperrors.InternalError(err)
	}
	logger.Info("profile created", "profile_id", profile.ID, "user_id", p.UserID)
	return dto.NewProfileResponse(profile), nil
}

// GetOwnProfile возвращает профиль текущего пользователя
func (s *ProfileService) GetOwnProfile(p auth.Principal) (*dto.ProfileResponse, *apperrors.AppError) {
	profile, err := s.profiles.FindByUserID(p.UserID)
	if err != nil {
		if errors.Is(err, repositories.ErrProfileNotFound) {
			return nil, apperrors.ErrNotFound(err, "profile", "Profile not found")
		}
		return nil, apperrors.InternalError(err)
	}
	return dto.NewProfileResponse(profile), nil
}

// GetProfile возвращает профиль по идентификатору.
// Доступно владельцу и админу.
func (s *ProfileService) GetProfile(p auth.Principal, id uint) (*dto.ProfileResponse, *apperrors.AppError) {
	profile, err := s.profiles.FindByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrProfileNotFound) {
			return nil, apperrors.ErrNotFound(err, "profile", "Profile not found")
		}
		return nil, apperrors.InternalError(err)
	}
	if !p.IsAdmin() && profile.UserID != p.UserID {
		return nil, apperrors.ErrNotResourceOwner
	}
	return dto.NewProfileResponse(profile), nil
}

// ListProfiles возвращает все профили (только админ, гейт на маршруте)
func (s *ProfileService) ListProfiles() ([]dto.ProfileResponse, *apperrors.AppError) {
	profiles, err := s.profiles.FindAll()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	out := make([]dto.ProfileResponse, 0, len(profiles))
	for i := range profiles {
		out = append(out, *dto.NewProfileResponse(&profiles[i]))
	}
	return out, nil
}

// UpdateProfile обновляет профиль. Разрешено владельцу и админу.
func (s *ProfileService) UpdateProfile(p auth.Principal, id uint, req *dto.UpdateProfileRequest) (*dto.ProfileResponse, *apperrors.AppError) {
	profile, err := s.profiles.FindByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrProfileNotFound) {
			return nil, apperrors.ErrNotFound(err, "profile", "Profile not found")
		}
		return nil, apperrors.InternalError(err)
	}
	if !p.IsAdmin() && profile.UserID != p.UserID {
		return nil, apperrors.ErrNotResourceOwner
	}

	if req.Bio != nil {
		profile.Bio = *req.Bio
	}
	if req.Skills != nil {
		profile.Skills = models.StringList(req.Skills)
	}
	if req.ResumeURL != nil {
		profile.ResumeURL = *req.ResumeURL
	}
	if err := s.profiles.Update(profile); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return dto.NewProfileResponse(profile), nil
}

// DeleteProfile удаляет профиль. Разрешено владельцу и админу.
func (s *ProfileService) DeleteProfile(p auth.Principal, id uint) *apperrors.AppError {
	profile, err := s.profiles.FindByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrProfileNotFound) {
			return apperrors.ErrNotFound(err, "profile", "Profile not found")
		}
		return apperrors.InternalError(err)
	}
	if !p.IsAdmin() && profile.UserID != p.UserID {
		return apperrors.ErrNotResourceOwner
	}
	if err := s.profiles.Delete(id); err != nil {
		if errors.Is(err, repositories.ErrProfileNotFound) {
			return apperrors.ErrNotFound(err, "profile", "Profile not found")
		}
		return apperrors.InternalError(err)
	}
	logger.Info("profile deleted", "profile_id", id, "by", p.UserID)
	return nil
}
