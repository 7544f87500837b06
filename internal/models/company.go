package models

type Company struct {
	BaseModel
	Name        string `gorm:"not null" json:"name"`
	Description string `json:"description,omitempty"`
	WebsiteURL  string `json:"websiteUrl,omitempty"`

	// Один пользователь - одна компания
	CreatedBy uint `gorm:"uniqueIndex;not null" json:"createdBy"`

	Jobs []Job `gorm:"foreignKey:CompanyID" json:"jobs,omitempty"`
}
