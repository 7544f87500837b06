package dto

import (
	"time"

	"jobboard_backend/internal/models"
)

// CreateApplicationRequest - отклик пользователя на вакансию
type CreateApplicationRequest struct {
	JobID uint `json:"jobId" validate:"required,gt=0"`
}

// UpdateApplicationStatusRequest - смена статуса владеющей компанией
type UpdateApplicationStatusRequest struct {
	Status string `json:"status" validate:"required,is-application-status"`
}

// ApplicationResponse - представление отклика
type ApplicationResponse struct {
	ID        uint                     `json:"id"`
	Status    models.ApplicationStatus `json:"status"`
	UserID    uint                     `json:"userId"`
	JobID     uint                     `json:"jobId"`
	CreatedAt time.Time                `json:"createdAt"`
	UpdatedAt time.Time                `json:"updatedAt"`

	Applicant *UserResponse `json:"applicant,omitempty"`
	Job       *JobResponse  `json:"job,omitempty"`
}

// NewApplicationResponse строит представление, разворачивая
// предзагруженные связи, когда они есть.
func NewApplicationResponse(a *models.Application) ApplicationResponse {
	resp := ApplicationResponse{
		ID:        a.ID,
		Status:    a.Status,
		UserID:    a.UserID,
		JobID:     a.JobID,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
	if a.User != nil {
		resp.Applicant = NewUserResponse(a.User)
	}
	if a.Job != nil {
		job := NewJobResponse(a.Job)
		resp.Job = &job
	}
	return resp
}

// NewApplicationResponseList конвертирует срез моделей
func NewApplicationResponseList(apps []models.Application) []ApplicationResponse {
	out := make([]ApplicationResponse, 0, len(apps))
	for i := range apps {
		out = append(out, NewApplicationResponse(&apps[i]))
	}
	return out
}
