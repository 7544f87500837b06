package models

import "gorm.io/datatypes"

type Job struct {
	BaseModel
	Title        string         `gorm:"not null" json:"title"`
	Description  string         `gorm:"not null" json:"description"`
	Requirements datatypes.JSON `gorm:"type:jsonb;not null" json:"requirements"`
	Location     string         `gorm:"not null" json:"location"`
	SalaryRange  string         `json:"salaryRange,omitempty"`
	CompanyID    uint           `gorm:"not null;index" json:"companyId"`

	Company      *Company      `gorm:"foreignKey:CompanyID" json:"company,omitempty"`
	Applications []Application `gorm:"foreignKey:JobID" json:"applications,omitempty"`
}

// GetRequirements возвращает список требований как []string
func (j *Job) GetRequirements() []string {
	return DecodeStringList(j.Requirements)
}
