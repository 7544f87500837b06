package dto

import "jobboard_backend/internal/models"

// CreateProfileRequest - запрос создания профиля соискателя
type CreateProfileRequest struct {
	Bio       string   `json:"bio" validate:"omitempty,max=5000"`
	Skills    []string `json:"skills" validate:"required,min=1"`
	ResumeURL string   `json:"resumeUrl" validate:"omitempty,url"`
}

type UpdateProfileRequest struct {
	Bio       *string  `json:"bio,omitempty" validate:"omitempty,max=5000"`
	Skills    []string `json:"skills,omitempty" validate:"omitempty,min=1"`
	ResumeURL *string  `json:"resumeUrl,omitempty" validate:"omitempty,url"`
}

// ProfileResponse - представление профиля
type ProfileResponse struct {
	ID        uint     `json:"id"`
	Bio       string   `json:"bio,omitempty"`
	Skills    []string `json:"skills"`
	ResumeURL string   `json:"resumeUrl,omitempty"`
	UserID    uint     `json:"userId"`
}

// NewProfileResponse строит представление профиля
func NewProfileResponse(p *models.Profile) *ProfileResponse {
	return &ProfileResponse{
		ID:        p.ID,
		Bio:       p.Bio,
		Skills:    p.GetSkills(),
		ResumeURL: p.ResumeURL,
		UserID:    p.UserID,
	}
}
