package dto

import "jobboard_backend/internal/models"

// CreateJobRequest - запрос создания вакансии.
// CompanyID обязателен только для админа; компания публикует под собой.
type CreateJobRequest struct {
	Title        string   `json:"title" validate:"required,notblank"`
	Description  string   `json:"description" validate:"required,notblank"`
	Requirements []string `json:"requirements" validate:"required,min=1"`
	Location     string   `json:"location" validate:"required,notblank"`
	SalaryRange  string   `json:"salaryRange" validate:"omitempty"`
	CompanyID    uint     `json:"companyId" validate:"omitempty,gt=0"`
}

type UpdateJobRequest struct {
	Title        *string  `json:"title,omitempty" validate:"omitempty,notblank"`
	Description  *string  `json:"description,omitempty" validate:"omitempty,notblank"`
	Requirements []string `json:"requirements,omitempty" validate:"omitempty,min=1"`
	Location     *string  `json:"location,omitempty" validate:"omitempty,notblank"`
	SalaryRange  *string  `json:"salaryRange,omitempty"`
}

// JobResponse - представление вакансии с развернутым списком требований
type JobResponse struct {
	ID           uint     `json:"id"`
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Requirements []string `json:"requirements"`
	Location     string   `json:"location"`
	SalaryRange  string   `json:"salaryRange,omitempty"`
	CompanyID    uint     `json:"companyId"`
}

// JobMatch - вакансия плюс навыки, по которым она подошла
type JobMatch struct {
	JobResponse
	MatchedSkills []string `json:"matchedSkills"`
}

// NewJobResponse строит представление вакансии
func NewJobResponse(j *models.Job) JobResponse {
	return JobResponse{
		ID:           j.ID,
		Title:        j.Title,
		Description:  j.Description,
		Requirements: j.GetRequirements(),
		Location:     j.Location,
		SalaryRange:  j.SalaryRange,
		CompanyID:    j.CompanyID,
	}
}

// NewJobResponseList конвертирует срез моделей
func NewJobResponseList(jobs []models.Job) []JobResponse {
	out := make([]JobResponse, 0, len(jobs))
	for i := range jobs {
		out = append(out, NewJobResponse(&jobs[i]))
	}
	return out
}
